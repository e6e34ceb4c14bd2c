// TEST TYPE: Integration Test
// DEPENDENCIES: fake svn/svnadmin scripts, optional real Subversion
// PURPOSE: Test svn argument building, output streaming and failure reporting

package svn_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/svn"
	"github.com/arthur-debert/svnmanifest/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestCheckoutArgs(t *testing.T) {
	tests := []struct {
		name string
		opts svn.CheckoutOptions
		want []string
	}{
		{
			name: "url only",
			opts: svn.CheckoutOptions{URL: "http://svn.example.com/repo/a"},
			want: []string{"checkout", "http://svn.example.com/repo/a"},
		},
		{
			name: "quiet with revision and destination",
			opts: svn.CheckoutOptions{
				Quiet:       true,
				Revision:    intPtr(42),
				URL:         "http://svn.example.com/repo/a",
				Destination: "a",
			},
			want: []string{"checkout", "--quiet", "--revision", "42", "http://svn.example.com/repo/a", "a"},
		},
		{
			name: "revision zero is passed",
			opts: svn.CheckoutOptions{Revision: intPtr(0), URL: "file:///r", Destination: "r"},
			want: []string{"checkout", "--revision", "0", "file:///r", "r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svn.CheckoutArgs(tt.opts))
		})
	}
}

func TestNew_ProbesVersion(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFakeTools("svn")

	client, err := svn.New("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.BinDir, "svn"), client.Path())
	assert.Equal(t, "1.14.3", client.Version())

	// the version probe is not a recorded invocation
	assert.Empty(t, env.Invocations())
}

func TestNew_ToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := svn.New("svn")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolNotFound))
	assert.Contains(t, err.Error(), "Error finding the 'svn' command")
}

func TestCheckout_StreamsOutput(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFakeTools("svn")

	var out bytes.Buffer
	client, err := svn.New("svn", svn.WithStdout(&out), svn.WithDir(env.ProjectDir))
	require.NoError(t, err)

	err = client.Checkout(context.Background(), svn.CheckoutOptions{
		Revision:    intPtr(7),
		URL:         "http://svn.example.com/repo/lib",
		Destination: "lib",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"checkout --revision 7 http://svn.example.com/repo/lib lib"}, env.Invocations())
	assert.Equal(t, "A    lib/README\nChecked out revision 1.\n", out.String())
	assert.True(t, testutil.DirExists(t, filepath.Join(env.ProjectDir, "lib")))
}

func TestCheckout_QuietDiscardsOutput(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFakeTools("svn")

	var out bytes.Buffer
	client, err := svn.New("svn", svn.WithStdout(&out), svn.WithDir(env.ProjectDir))
	require.NoError(t, err)

	err = client.Checkout(context.Background(), svn.CheckoutOptions{
		Quiet:       true,
		URL:         "http://svn.example.com/repo/lib",
		Destination: "lib",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"checkout --quiet http://svn.example.com/repo/lib lib"}, env.Invocations())
	assert.Empty(t, out.String())
}

func TestCheckout_Failure(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFakeTools("svn")
	env.FailToolOn("http://svn.example.com/repo/broken")

	var stderr bytes.Buffer
	client, err := svn.New("svn", svn.WithStdout(&bytes.Buffer{}), svn.WithStderr(&stderr), svn.WithDir(env.ProjectDir))
	require.NoError(t, err)

	err = client.Checkout(context.Background(), svn.CheckoutOptions{
		URL:         "http://svn.example.com/repo/broken",
		Destination: "broken",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolExec))
	assert.Equal(t, errors.KindExternalTool, errors.KindOf(err))
	assert.Contains(t, err.Error(), "'svn checkout' failed")
	assert.Contains(t, stderr.String(), "fake failure")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestCheckout_OutputWriteFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFakeTools("svn")

	client, err := svn.New("svn", svn.WithStdout(failingWriter{}), svn.WithDir(env.ProjectDir))
	require.NoError(t, err)

	err = client.Checkout(context.Background(), svn.CheckoutOptions{
		URL:         "http://svn.example.com/repo/lib",
		Destination: "lib",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolOutput))
}

func TestAddAndCommitArgs(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFakeTools("svn")

	client, err := svn.New("svn", svn.WithStdout(&bytes.Buffer{}), svn.WithDir(env.ProjectDir))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Add(ctx, true, "a.txt", "b.txt"))
	require.NoError(t, client.Commit(ctx, false, "initial import"))

	assert.Equal(t, []string{
		"add --quiet a.txt b.txt",
		"commit -m initial import",
	}, env.Invocations())
}

func TestAdminCreate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFakeTools("svnadmin")

	admin, err := svn.NewAdmin("", svn.WithStdout(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.BinDir, "svnadmin"), admin.Path())

	repo := filepath.Join(env.ProjectDir, "repo")
	require.NoError(t, admin.Create(context.Background(), repo))

	assert.Equal(t, []string{"create " + repo}, env.Invocations())
	assert.True(t, testutil.DirExists(t, repo))
}

// TestRoundTrip runs the real tools against a local file:// repository.
func TestRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("svn"); err != nil {
		t.Skip("svn not installed")
	}
	if _, err := exec.LookPath("svnadmin"); err != nil {
		t.Skip("svnadmin not installed")
	}

	ctx := context.Background()
	root := t.TempDir()
	repo := filepath.Join(root, "repo")
	var out bytes.Buffer

	admin, err := svn.NewAdmin("", svn.WithStdout(&out))
	require.NoError(t, err)
	require.NoError(t, admin.Create(ctx, repo))

	client, err := svn.New("", svn.WithStdout(&out), svn.WithDir(root))
	require.NoError(t, err)

	repoURL := "file://" + filepath.ToSlash(repo)
	require.NoError(t, client.Checkout(ctx, svn.CheckoutOptions{Quiet: true, URL: repoURL, Destination: "wc"}))

	wc := filepath.Join(root, "wc")
	testutil.CreateFile(t, wc, "README", "hello\n")

	wcClient, err := svn.New("", svn.WithStdout(&out), svn.WithDir(wc))
	require.NoError(t, err)
	require.NoError(t, wcClient.Add(ctx, true, "README"))
	require.NoError(t, wcClient.Commit(ctx, true, "add readme"))

	require.NoError(t, client.Checkout(ctx, svn.CheckoutOptions{
		Revision:    intPtr(1),
		URL:         repoURL,
		Destination: "again",
	}))
	assert.Equal(t, "hello\n", testutil.ReadFile(t, filepath.Join(root, "again", "README")))
	assert.Contains(t, out.String(), "Checked out revision 1.")
}
