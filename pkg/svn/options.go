package svn

import (
	"io"
)

// Option configures a Client or Admin
type Option func(*tool)

// WithStdout sets where streamed command output goes (default os.Stdout)
func WithStdout(w io.Writer) Option {
	return func(t *tool) { t.stdout = w }
}

// WithStderr sets where command diagnostics go (default os.Stderr)
func WithStderr(w io.Writer) Option {
	return func(t *tool) { t.stderr = w }
}

// WithDir sets the working directory commands run in
func WithDir(dir string) Option {
	return func(t *tool) { t.dir = dir }
}
