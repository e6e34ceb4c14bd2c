// pkg/checkout/plan_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test planning and dry-run recording

package checkout_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/svnmanifest/pkg/checkout"
	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/manifest"
	"github.com/arthur-debert/svnmanifest/pkg/svn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	m, err := manifest.Decode([]byte(`
gitignore: ["*.o"]
svn:
  rev: 3
  url_base: https://example.org/svn/
  items:
    - url: lib/trunk
      path: lib
      gitignore:
        include: [src]
    - url: https://mirror.example.net/tools
      rev: 12
`), manifest.FormatYAML)
	require.NoError(t, err)

	plan, err := checkout.Plan(m)
	require.NoError(t, err)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, "https://example.org/svn/lib/trunk", plan.Items[0].URL.String())
	assert.Equal(t, "lib", plan.Items[0].Dir)
	assert.Equal(t, 3, *plan.Items[0].Revision)
	assert.Equal(t, "https://mirror.example.net/tools", plan.Items[1].URL.String())
	assert.Equal(t, "tools", plan.Items[1].Dir)
	assert.Equal(t, 12, *plan.Items[1].Revision)

	assert.Equal(t, []string{"*.o", "/lib/*", "!/lib/src"}, plan.Ignore.Lines())
}

func TestPlan_ResolutionError(t *testing.T) {
	m, err := manifest.Decode([]byte(`
svn:
  url_base: "mailto:someone@example.org"
  items:
    - url: proj
`), manifest.FormatYAML)
	require.NoError(t, err)

	_, err = checkout.Plan(m)
	require.Error(t, err)
	assert.Equal(t, errors.KindURL, errors.KindOf(err))
}

func TestDryRunCheckouter(t *testing.T) {
	dry := &checkout.DryRunCheckouter{}
	ctx := context.Background()

	require.NoError(t, dry.Checkout(ctx, svn.CheckoutOptions{URL: "https://example.org/a", Destination: "a"}))
	require.NoError(t, dry.Checkout(ctx, svn.CheckoutOptions{URL: "https://example.org/b", Destination: "b"}))

	reqs := dry.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "a", reqs[0].Destination)
	assert.Equal(t, "b", reqs[1].Destination)
}
