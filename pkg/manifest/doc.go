// Package manifest models the declarative checkout manifest.
//
// A manifest lists Subversion items to check out, optionally sharing a base
// URL and a default revision, together with the ignore rules each checkout
// contributes to the generated ignore file:
//
//	gitignore:
//	  - "*.log"
//	svn:
//	  rev: 5
//	  url_base: https://example.org/svn/
//	  items:
//	    - url: proj
//	      rev: 9
//	      path: vendor/proj
//	      gitignore:
//	        exclude: [build]
//	        include: [build/keep.txt]
//
// Manifests are read as YAML, or as TOML when the file name ends in .toml.
// A parsed Manifest is never modified afterwards.
package manifest
