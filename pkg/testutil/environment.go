// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/svnmanifest/pkg/filesystem"
	"github.com/arthur-debert/svnmanifest/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a project directory and tool setup for a test
type TestEnvironment struct {
	// ProjectDir holds the manifest and receives checkouts and the ignore file
	ProjectDir string

	// BinDir is prepended to PATH; fake tools are installed here
	BinDir string

	// ToolLog records fake tool invocations
	ToolLog string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Isolated environments
// also point XDG_STATE_HOME and XDG_CONFIG_HOME into the temp directory.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{Type: envType, t: t}
	switch envType {
	case EnvIsolated:
		env.setupIsolatedEnvironment()
	default:
		env.setupMemoryEnvironment()
	}
	return env
}

func (env *TestEnvironment) setupMemoryEnvironment() {
	env.ProjectDir = "/virtual/project"
	env.FS = NewTestFS()
	_ = env.FS.MkdirAll(env.ProjectDir, 0755)
}

func (env *TestEnvironment) setupIsolatedEnvironment() {
	tempDir := env.t.TempDir()

	env.ProjectDir = filepath.Join(tempDir, "project")
	env.BinDir = filepath.Join(tempDir, "bin")
	env.ToolLog = filepath.Join(tempDir, "tool.log")
	env.FS = filesystem.NewOS()

	_ = env.FS.MkdirAll(env.ProjectDir, 0755)
	_ = env.FS.MkdirAll(env.BinDir, 0755)

	env.t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
	env.t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))
	env.t.Setenv(EnvFakeToolLog, env.ToolLog)
	xdg.Reload()
	env.t.Cleanup(xdg.Reload)
}

// WriteManifest writes a manifest file into the project directory
func (env *TestEnvironment) WriteManifest(name, content string) string {
	env.t.Helper()
	path := filepath.Join(env.ProjectDir, name)
	WriteFS(env.t, env.FS, path, content)
	return path
}

// InstallFakeTools installs fake executables for the given names and puts
// BinDir first on PATH.
func (env *TestEnvironment) InstallFakeTools(names ...string) {
	env.t.Helper()
	if env.Type != EnvIsolated {
		env.t.Fatal("fake tools need an isolated environment")
	}
	for _, name := range names {
		WriteFakeTool(env.t, env.BinDir, name)
	}
	env.t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// FailToolOn makes fake tools exit 1 when any argument equals arg
func (env *TestEnvironment) FailToolOn(arg string) {
	env.t.Setenv(EnvFakeToolFailOn, arg)
}

// Invocations returns the fake tool argument lines recorded so far
func (env *TestEnvironment) Invocations() []string {
	env.t.Helper()
	return ReadInvocations(env.t, env.ToolLog)
}

// Chdir changes into the project directory for the rest of the test
func (env *TestEnvironment) Chdir() {
	env.t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		env.t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(env.ProjectDir); err != nil {
		env.t.Fatalf("Failed to change directory: %v", err)
	}
	env.t.Cleanup(func() { _ = os.Chdir(prev) })
}
