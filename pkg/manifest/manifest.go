package manifest

import (
	"net/url"
)

// DefaultPath is the manifest file read when no other path is configured
const DefaultPath = "manifest.yml"

// Manifest is the parsed configuration for one run
type Manifest struct {
	// GlobalIgnore lines are excluded unconditionally
	GlobalIgnore []string
	Group        SvnGroup
}

// SvnGroup holds the items sharing an optional base URL and revision
type SvnGroup struct {
	DefaultRevision *int
	URLBase         *url.URL
	Items           []SvnItem
}

// SvnItem is one repository to check out
type SvnItem struct {
	// URL is absolute when the group has no URLBase, otherwise it is
	// resolved against it
	URL string

	// Revision overrides the group default when set
	Revision *int

	// Destination is the explicit checkout directory
	Destination *string

	Ignore *IgnoreFragment
}

// IgnoreFragment holds patterns relative to the item's checkout directory
type IgnoreFragment struct {
	Exclude []string
	Include []string
}
