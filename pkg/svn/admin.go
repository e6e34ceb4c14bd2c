package svn

import (
	"context"
)

// DefaultAdminCommand is the svnadmin executable name looked up on PATH
const DefaultAdminCommand = "svnadmin"

// Admin runs svnadmin commands
type Admin struct {
	*tool
}

// NewAdmin locates the named svnadmin executable (DefaultAdminCommand when empty)
func NewAdmin(name string, opts ...Option) (*Admin, error) {
	if name == "" {
		name = DefaultAdminCommand
	}
	t, err := newTool(name, opts)
	if err != nil {
		return nil, err
	}
	return &Admin{tool: t}, nil
}

// Path returns the absolute path of the executable
func (a *Admin) Path() string {
	return a.path
}

// Version returns the output of --version --quiet
func (a *Admin) Version() string {
	return a.version
}

// Create makes a new, empty repository at path.
// http://svnbook.red-bean.com/en/1.7/svn.ref.svnadmin.c.create.html
func (a *Admin) Create(ctx context.Context, path string) error {
	return a.run(ctx, false, []string{"create", path})
}
