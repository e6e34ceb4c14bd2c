package resolve

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
)

// specialSchemes always have a hierarchical path, even without a host
var specialSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"file":  true,
	"ws":    true,
	"wss":   true,
}

// CannotBeABase reports whether u lacks the hierarchical path structure
// needed to resolve relative references against it, as with
// "mailto:dev@example.org" or "urn:isbn:0451450523".
func CannotBeABase(u *url.URL) bool {
	if u.Opaque != "" {
		return true
	}
	if specialSchemes[strings.ToLower(u.Scheme)] {
		return false
	}
	return u.Host == "" && !strings.HasPrefix(u.Path, "/")
}

// URL computes the absolute URL of an item fragment, joining it to base
// when one is configured.
func URL(base *url.URL, fragment string) (*url.URL, error) {
	if base == nil {
		u, err := url.Parse(fragment)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrURLParse, "URL parse error: %s", fragment)
		}
		if !u.IsAbs() {
			return nil, errors.Newf(errors.ErrURLNotAbsolute,
				"not an absolute URL (relative URL without a base): %s", fragment)
		}
		return normalize(u), nil
	}

	if CannotBeABase(base) {
		return nil, errors.Newf(errors.ErrURLBase, "url_base is not a URL base: %s", base).
			WithDetail("url_base", base.String())
	}

	ref, err := url.Parse(fragment)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrURLParse, "URL parse error: %s", fragment)
	}
	return base.ResolveReference(ref), nil
}

// DirName returns the checkout directory for u. An explicit destination is
// used verbatim; otherwise the last path segment of u is used, still
// percent-encoded.
func DirName(u *url.URL, destination *string) (string, error) {
	if destination != nil {
		if !utf8.ValidString(*destination) {
			return "", errors.Newf(errors.ErrPathEncoding, "Path is not valid UTF-8: %s", u)
		}
		return *destination, nil
	}

	if u.Opaque != "" || u.Path == "" {
		return "", errors.Newf(errors.ErrURLNoPath, "URL has no path: %s", u)
	}

	segments := strings.Split(u.EscapedPath(), "/")
	dir := segments[len(segments)-1]
	if dir == "" {
		return "", errors.Newf(errors.ErrURLNoPath, "URL missing a path: %s", u)
	}
	if decoded, err := url.PathUnescape(dir); err == nil && (decoded == "." || decoded == "..") {
		return "", errors.Newf(errors.ErrURLNoPath, "URL path ends in a dot segment: %s", u)
	}
	return dir, nil
}

// normalize removes dot segments from the path of an absolute URL
func normalize(u *url.URL) *url.URL {
	if u.Opaque != "" || u.Path == "" {
		return u
	}
	return u.ResolveReference(u)
}

// Revision applies the override rules: the item revision wins, then the
// group default, otherwise no revision.
func Revision(groupDefault, item *int) *int {
	if item != nil {
		return item
	}
	return groupDefault
}
