package resolve

import (
	"net/url"

	"github.com/arthur-debert/svnmanifest/pkg/manifest"
)

// Item is a manifest item with everything needed to check it out
type Item struct {
	URL      *url.URL
	Revision *int
	Dir      string
	Ignore   *manifest.IgnoreFragment
}

// Resolve builds the Item for one manifest entry of group
func Resolve(group manifest.SvnGroup, item manifest.SvnItem) (Item, error) {
	u, err := URL(group.URLBase, item.URL)
	if err != nil {
		return Item{}, err
	}

	dir, err := DirName(u, item.Destination)
	if err != nil {
		return Item{}, err
	}

	return Item{
		URL:      u,
		Revision: Revision(group.DefaultRevision, item.Revision),
		Dir:      dir,
		Ignore:   item.Ignore,
	}, nil
}
