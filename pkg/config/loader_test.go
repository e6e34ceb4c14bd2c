// pkg/config/loader_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs), environment
// PURPOSE: Test configuration layering and validation

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/svnmanifest/pkg/config"
	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's own config out of the test
func isolate(t *testing.T) string {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	return env.ProjectDir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "manifest.yml", cfg.Manifest.Path)
	assert.Equal(t, ".gitignore", cfg.Ignore.File)
	assert.Equal(t, ".", cfg.Ignore.Dir)
	assert.Equal(t, "svn", cfg.Tools.Svn)
	assert.False(t, cfg.Output.Quiet)
	assert.Equal(t, config.FormatAuto, cfg.Output.Format)
	assert.Empty(t, cfg.Sources)
}

func TestLoad_Layering(t *testing.T) {
	dir := isolate(t)

	userFile := testutil.CreateFile(t, t.TempDir(), "config.toml", `
[tools]
svn = "/opt/svn/bin/svn"

[output]
format = "plain"
`)
	testutil.CreateFile(t, dir, config.ProjectFileName, `
[manifest]
path = "deps.toml"

[output]
format = "color"
`)
	t.Setenv("SVNMANIFEST_IGNORE_FILE", " .svnignore ")
	t.Setenv("SVNMANIFEST_OUTPUT_QUIET", "true")

	cfg, err := config.Load(config.LoadOptions{
		WorkDir:  dir,
		UserFile: userFile,
		Overrides: map[string]interface{}{
			"manifest.path": "override.yml",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/opt/svn/bin/svn", cfg.Tools.Svn, "user file")
	assert.Equal(t, "color", cfg.Output.Format, "project file beats user file")
	assert.Equal(t, ".svnignore", cfg.Ignore.File, "env, trimmed")
	assert.True(t, cfg.Output.Quiet, "env, weakly typed")
	assert.Equal(t, "override.yml", cfg.Manifest.Path, "overrides beat everything")
	assert.Equal(t, []string{userFile, filepath.Join(dir, config.ProjectFileName)}, cfg.Sources)
}

func TestLoad_UserFileFromXDG(t *testing.T) {
	dir := isolate(t)
	configHome := filepath.Join(filepath.Dir(dir), "config")
	testutil.CreateFile(t, filepath.Join(configHome, "svnmanifest"), "config.toml", "[tools]\nsvn = \"svn-1.14\"\n")

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "svn-1.14", cfg.Tools.Svn)
	assert.Len(t, cfg.Sources, 1)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		project string
		code    errors.ErrorCode
	}{
		{
			name:    "malformed toml",
			project: "[tools\nsvn = 1",
			code:    errors.ErrConfigParse,
		},
		{
			name:    "unknown format",
			project: "[output]\nformat = \"fancy\"\n",
			code:    errors.ErrConfigInvalid,
		},
		{
			name:    "empty tool name",
			project: "[tools]\nsvn = \"\"\n",
			code:    errors.ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			testutil.CreateFile(t, dir, config.ProjectFileName, tt.project)

			_, err := config.Load(config.LoadOptions{WorkDir: dir})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, errors.KindConfig, errors.KindOf(err))
		})
	}
}

func TestConfigTOML(t *testing.T) {
	dir := isolate(t)
	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	data, err := cfg.TOML()
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "[manifest]")
	assert.Contains(t, out, "path = 'manifest.yml'")
	assert.Contains(t, out, "svn = 'svn'")
	assert.NotContains(t, out, "svnadmin")
	assert.NotContains(t, out, "Sources")
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, config.DefaultsContent(), "[tools]")
}
