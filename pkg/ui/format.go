package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto detects the format from the output's terminal capabilities
	FormatAuto Format = iota
	// FormatColor renders styled output
	FormatColor
	// FormatPlain renders text without any styling
	FormatPlain
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatColor:
		return "color"
	case FormatPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "color", "colour", "term", "terminal":
		return FormatColor, nil
	case "plain", "text":
		return FormatPlain, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", s)
	}
}

// DetectFormat determines the output format from environment and terminal
// capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatPlain
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatPlain
	}

	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatPlain
	}

	return FormatColor
}

// ResolveFormat turns FormatAuto into a concrete format for w. Writers
// that are not files render plain.
func ResolveFormat(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatPlain
}
