// Package resolve turns manifest items into absolute URLs, effective
// revisions and checkout directory names.
//
// Relative item URLs are joined to the group's url_base with RFC 3986
// reference resolution, so a base without a trailing slash replaces its
// last segment:
//
//	https://example.org/svn/ + proj  -> https://example.org/svn/proj
//	https://example.org/svn  + proj  -> https://example.org/proj
//
// When no explicit destination is given, the directory name is the last
// path segment of the resolved URL. A URL ending in "/" has no usable last
// segment and is rejected.
package resolve
