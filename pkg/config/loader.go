package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/logging"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// WorkDir holds the project config file; defaults to "."
	WorkDir string

	// UserFile overrides the XDG lookup of the user config file
	UserFile string

	// Overrides are applied last, keyed by dotted path (e.g. "output.quiet")
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.load")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default configuration")
	}

	// 2. User config
	userFile := opts.UserFile
	if userFile == "" {
		if found, err := xdg.SearchConfigFile(UserFileName); err == nil {
			userFile = found
		}
	}
	if loaded, err := loadFile(k, userFile); err != nil {
		return nil, err
	} else if loaded {
		sources = append(sources, userFile)
	}

	// 3. Project config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	projectFile := filepath.Join(workDir, ProjectFileName)
	if loaded, err := loadFile(k, projectFile); err != nil {
		return nil, err
	} else if loaded {
		sources = append(sources, projectFile)
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Str("manifest", cfg.Manifest.Path).
		Str("ignoreFile", cfg.Ignore.File).
		Str("svn", cfg.Tools.Svn).
		Msg("Configuration loaded")
	return &cfg, nil
}

// loadFile merges a TOML file into k if it exists
func loadFile(k *koanf.Koanf, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return true, nil
}

// trimStringHookFunc strips surrounding whitespace from string values
func trimStringHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}
