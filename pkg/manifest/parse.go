package manifest

import (
	stderrors "errors"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/logging"
	"github.com/arthur-debert/svnmanifest/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the serialization used by a manifest file
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the name of the format
func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatForPath picks the format from the file extension. Anything that is
// not .toml is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse reads and validates the manifest at path
func Parse(fsys types.FS, path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest.parse")
	logger.Debug().Str("path", path).Msg("Opening path")

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "manifest not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read manifest: %s", path).
			WithDetail("path", path)
	}

	m, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("items", len(m.Group.Items)).
		Int("globalIgnore", len(m.GlobalIgnore)).
		Interface("manifest", m).
		Msg("Manifest loaded")
	return m, nil
}

// Decode parses manifest data in the given format
func Decode(data []byte, format Format) (*Manifest, error) {
	var raw fileSchema
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "TOML error")
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "YAML error")
		}
	}
	return raw.toManifest()
}

func (f *fileSchema) toManifest() (*Manifest, error) {
	if f.Svn == nil {
		return nil, errors.New(errors.ErrConfigInvalid, "missing field `svn`")
	}
	group, err := f.Svn.toGroup()
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		GlobalIgnore: f.GitIgnore,
		Group:        group,
	}
	if m.GlobalIgnore == nil {
		m.GlobalIgnore = []string{}
	}
	return m, nil
}

func (g *groupSchema) toGroup() (SvnGroup, error) {
	var group SvnGroup

	if g.Items == nil {
		return group, errors.New(errors.ErrConfigInvalid, "missing field `svn.items`")
	}
	if err := checkRevision(g.Rev, "svn.rev"); err != nil {
		return group, err
	}
	group.DefaultRevision = g.Rev

	if g.URLBase != nil {
		base, err := url.Parse(*g.URLBase)
		if err != nil {
			return group, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid `svn.url_base`: %s", *g.URLBase)
		}
		if !base.IsAbs() {
			return group, errors.Newf(errors.ErrConfigInvalid,
				"invalid `svn.url_base`: relative URL without a base: %s", *g.URLBase)
		}
		group.URLBase = base
	}

	group.Items = make([]SvnItem, 0, len(*g.Items))
	for i, raw := range *g.Items {
		item, err := raw.toItem(i)
		if err != nil {
			return group, err
		}
		group.Items = append(group.Items, item)
	}
	return group, nil
}

func (it *itemSchema) toItem(index int) (SvnItem, error) {
	var item SvnItem

	if it.URL == nil {
		return item, errors.Newf(errors.ErrConfigInvalid, "missing field `url` in svn.items[%d]", index).
			WithDetail("item", index)
	}
	if err := checkRevision(it.Rev, "rev"); err != nil {
		return item, err.WithDetail("item", index)
	}

	item.URL = *it.URL
	item.Revision = it.Rev
	item.Destination = it.Path
	if it.GitIgnore != nil {
		item.Ignore = &IgnoreFragment{
			Exclude: nonNil(it.GitIgnore.Exclude),
			Include: nonNil(it.GitIgnore.Include),
		}
	}
	return item, nil
}

func checkRevision(rev *int, field string) *errors.ManifestError {
	if rev != nil && *rev < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "invalid `%s`: revision must not be negative, got %d", field, *rev)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
