// Package types defines the interfaces shared across svnmanifest packages.
package types
