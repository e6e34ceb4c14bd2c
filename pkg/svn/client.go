package svn

import (
	"context"
	"strconv"
)

// DefaultCommand is the svn executable name looked up on PATH
const DefaultCommand = "svn"

// Client runs svn commands
type Client struct {
	*tool
}

// CheckoutOptions describes one svn checkout
type CheckoutOptions struct {
	Quiet bool

	// Revision is passed as --revision when set; HEAD otherwise
	Revision *int

	URL string

	// Destination is the working copy directory; svn infers it from the
	// URL when empty
	Destination string
}

// New locates the named svn executable (DefaultCommand when empty)
func New(name string, opts ...Option) (*Client, error) {
	if name == "" {
		name = DefaultCommand
	}
	t, err := newTool(name, opts)
	if err != nil {
		return nil, err
	}
	return &Client{tool: t}, nil
}

// Path returns the absolute path of the executable
func (c *Client) Path() string {
	return c.path
}

// Version returns the output of --version --quiet
func (c *Client) Version() string {
	return c.version
}

// Checkout runs svn checkout.
// http://svnbook.red-bean.com/en/1.7/svn.ref.svn.c.checkout.html
func (c *Client) Checkout(ctx context.Context, opts CheckoutOptions) error {
	return c.run(ctx, opts.Quiet, CheckoutArgs(opts))
}

// CheckoutArgs builds the svn argument list for opts
func CheckoutArgs(opts CheckoutOptions) []string {
	args := make([]string, 0, 6)
	args = append(args, "checkout")
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if opts.Revision != nil {
		args = append(args, "--revision", strconv.Itoa(*opts.Revision))
	}
	args = append(args, opts.URL)
	if opts.Destination != "" {
		args = append(args, opts.Destination)
	}
	return args
}

// Add schedules paths for addition.
// http://svnbook.red-bean.com/en/1.7/svn.ref.svn.c.add.html
func (c *Client) Add(ctx context.Context, quiet bool, paths ...string) error {
	args := make([]string, 0, 2+len(paths))
	args = append(args, "add")
	if quiet {
		args = append(args, "--quiet")
	}
	args = append(args, paths...)
	return c.run(ctx, quiet, args)
}

// Commit sends changes to the repository. With no paths the working
// directory is committed.
// http://svnbook.red-bean.com/en/1.7/svn.ref.svn.c.commit.html
func (c *Client) Commit(ctx context.Context, quiet bool, message string, paths ...string) error {
	args := make([]string, 0, 4+len(paths))
	args = append(args, "commit")
	if quiet {
		args = append(args, "--quiet")
	}
	args = append(args, "-m", message)
	args = append(args, paths...)
	return c.run(ctx, quiet, args)
}
