package ui

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
)

//go:embed embedded/styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// StyleConfig represents the complete styles configuration
type StyleConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// ParseStyles decodes a styles.yaml document
func ParseStyles(data []byte) (*StyleConfig, error) {
	var cfg StyleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}
	return &cfg, nil
}

// DefaultStyles returns the embedded style configuration
func DefaultStyles() *StyleConfig {
	cfg, err := ParseStyles(defaultStyles)
	if err != nil {
		// embedded file is part of the build
		panic(err)
	}
	return cfg
}

// buildStyles creates the named styles bound to r
func buildStyles(r *lipgloss.Renderer, cfg *StyleConfig) map[string]lipgloss.Style {
	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := r.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
		styles[name] = style
	}
	return styles
}
