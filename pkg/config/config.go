package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
)

const (
	// ProjectFileName is looked up in the working directory
	ProjectFileName = ".svnmanifest.toml"

	// UserFileName is looked up under the XDG config directories
	UserFileName = "svnmanifest/config.toml"

	// EnvPrefix marks environment overrides, e.g. SVNMANIFEST_TOOLS_SVN
	EnvPrefix = "SVNMANIFEST_"
)

// Output formats
const (
	FormatAuto  = "auto"
	FormatColor = "color"
	FormatPlain = "plain"
)

// Config is the effective configuration
type Config struct {
	Manifest ManifestConfig `koanf:"manifest" toml:"manifest"`
	Ignore   IgnoreConfig   `koanf:"ignore" toml:"ignore"`
	Tools    ToolsConfig    `koanf:"tools" toml:"tools"`
	Output   OutputConfig   `koanf:"output" toml:"output"`

	// Sources lists the config files that were merged, in order
	Sources []string `koanf:"-" toml:"-"`
}

// ManifestConfig locates the manifest
type ManifestConfig struct {
	Path string `koanf:"path" toml:"path"`
}

// IgnoreConfig controls where the generated ignore file is written
type IgnoreConfig struct {
	// File is the generated ignore file name
	File string `koanf:"file" toml:"file"`
	// Dir receives the ignore file
	Dir string `koanf:"dir" toml:"dir"`
}

// ToolsConfig names the svn executable, looked up on PATH unless absolute
type ToolsConfig struct {
	Svn string `koanf:"svn" toml:"svn"`
}

// OutputConfig controls svn output forwarding and styling
type OutputConfig struct {
	Quiet  bool   `koanf:"quiet" toml:"quiet"`
	Format string `koanf:"format" toml:"format"`
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	required := map[string]string{
		"manifest.path": c.Manifest.Path,
		"ignore.file":   c.Ignore.File,
		"ignore.dir":    c.Ignore.Dir,
		"tools.svn":     c.Tools.Svn,
	}
	for key, value := range required {
		if value == "" {
			return errors.Newf(errors.ErrConfigInvalid, "config key `%s` must not be empty", key).
				WithDetail("key", key)
		}
	}

	switch c.Output.Format {
	case FormatAuto, FormatColor, FormatPlain:
	default:
		return errors.Newf(errors.ErrConfigInvalid,
			"config key `output.format` must be one of auto, color, plain; got %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	return nil
}

// TOML renders the configuration in the config file format
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
	}
	return data, nil
}
