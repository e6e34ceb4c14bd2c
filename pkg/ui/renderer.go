package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Renderer writes styled output to one writer
type Renderer struct {
	w      io.Writer
	format Format
	lg     *lipgloss.Renderer
	styles map[string]lipgloss.Style
}

// NewRenderer creates a renderer for w. FormatAuto is resolved against w.
func NewRenderer(w io.Writer, format Format) *Renderer {
	format = ResolveFormat(format, w)

	lg := lipgloss.NewRenderer(w)
	if format == FormatPlain {
		lg.SetColorProfile(termenv.Ascii)
	} else {
		lg.SetColorProfile(termenv.ANSI256)
	}

	return &Renderer{
		w:      w,
		format: format,
		lg:     lg,
		styles: buildStyles(lg, DefaultStyles()),
	}
}

// Format returns the concrete format in use
func (r *Renderer) Format() Format {
	return r.format
}

// Style returns the named style, or an unstyled one
func (r *Renderer) Style(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return r.lg.NewStyle()
}

// Render applies the named style to text. Plain renderers return text as is.
func (r *Renderer) Render(name, text string) string {
	if r.format == FormatPlain {
		return text
	}
	return r.Style(name).Render(text)
}

// Message writes one line
func (r *Renderer) Message(style, format string, args ...interface{}) {
	_, _ = fmt.Fprintln(r.w, r.Render(style, fmt.Sprintf(format, args...)))
}

// Error writes err's message
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintln(r.w, r.Render("Error", "Error: "+err.Error()))
}

// Table writes a table with a header row
func (r *Renderer) Table(header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithSeparator("  ").WithData(data).Srender()
	if err != nil {
		return err
	}
	if r.format == FormatPlain {
		out = pterm.RemoveColorFromString(out)
	}
	_, err = fmt.Fprintln(r.w, out)
	return err
}

// IgnoreLines writes ignore file lines, colored by kind
func (r *Renderer) IgnoreLines(lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(r.w, r.Render(ignoreStyle(line), line))
	}
}

func ignoreStyle(line string) string {
	switch {
	case strings.HasPrefix(line, "!"):
		return "IgnoreInclude"
	case strings.HasSuffix(line, "/*") && strings.Count(line, "/") == 2 && strings.HasPrefix(line, "/"):
		return "IgnoreBlanket"
	case strings.HasPrefix(line, "/"):
		return "IgnoreExclude"
	default:
		return "IgnoreGlobal"
	}
}
