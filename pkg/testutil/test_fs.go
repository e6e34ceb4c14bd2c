package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/svnmanifest/pkg/filesystem"
	"github.com/arthur-debert/svnmanifest/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFS writes content to path on fsys, creating parent directories.
// It fails the test on any error.
func WriteFS(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
