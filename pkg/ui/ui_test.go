// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test format selection and rendering

package ui_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want ui.Format
	}{
		{"", ui.FormatAuto},
		{"auto", ui.FormatAuto},
		{"color", ui.FormatColor},
		{"Terminal", ui.FormatColor},
		{"plain", ui.FormatPlain},
		{" text ", ui.FormatPlain},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ui.ParseFormat("json")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatPlain, ui.ResolveFormat(ui.FormatAuto, &buf), "non-file writers are plain")
	assert.Equal(t, ui.FormatColor, ui.ResolveFormat(ui.FormatColor, &buf), "explicit format wins")

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatPlain, ui.DetectFormat(os.Stdout))
}

func TestDefaultStyles(t *testing.T) {
	cfg := ui.DefaultStyles()
	for _, name := range []string{"Error", "Success", "Header", "URL", "Dir", "IgnoreInclude"} {
		assert.Contains(t, cfg.Styles, name)
	}
	assert.Equal(t, "red", cfg.Styles["Error"].Foreground)
	assert.NotEmpty(t, cfg.Colors["red"].Dark)
}

func TestParseStyles_Invalid(t *testing.T) {
	_, err := ui.ParseStyles([]byte("styles: [unclosed"))
	require.Error(t, err)
}

func TestRenderer_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewRenderer(&buf, ui.FormatPlain)
	assert.Equal(t, ui.FormatPlain, r.Format())

	r.Message("Success", "Wrote %s", "manifest.yml")
	r.Error(errors.New(errors.ErrToolNotFound, "Error finding the 'svn' command"))

	assert.Equal(t,
		"Wrote manifest.yml\nError: [TOOL_NOT_FOUND] Error finding the 'svn' command\n",
		buf.String())
}

func TestRenderer_ColorAddsEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewRenderer(&buf, ui.FormatColor)

	r.Message("Error", "boom")
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewRenderer(&buf, ui.FormatPlain)

	err := r.Table(
		[]string{"DIR", "URL"},
		[][]string{
			{"proj", "https://example.org/svn/proj"},
			{"lib", "https://example.org/svn/lib"},
		})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.True(t, strings.HasPrefix(out, "DIR"))
	assert.Contains(t, out, "https://example.org/svn/proj")
	assert.Less(t, strings.Index(out, "proj"), strings.Index(out, "https://example.org/svn/lib"))
}

func TestRenderer_IgnoreLines(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewRenderer(&buf, ui.FormatPlain)

	r.IgnoreLines([]string{"*.log", "/proj/build", "/proj/*", "!/proj/build/keep.txt"})
	assert.Equal(t, "*.log\n/proj/build\n/proj/*\n!/proj/build/keep.txt\n", buf.String())
}
