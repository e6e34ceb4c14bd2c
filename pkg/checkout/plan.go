package checkout

import (
	"context"
	"sync"

	"github.com/arthur-debert/svnmanifest/pkg/ignore"
	"github.com/arthur-debert/svnmanifest/pkg/logging"
	"github.com/arthur-debert/svnmanifest/pkg/manifest"
	"github.com/arthur-debert/svnmanifest/pkg/resolve"
	"github.com/arthur-debert/svnmanifest/pkg/svn"
)

// PlanResult is what a run would do, computed without invoking any tool
type PlanResult struct {
	Items  []resolve.Item
	Ignore *ignore.Spec
}

// Plan resolves every item of m and builds the ignore spec a successful
// run would write. Resolution errors are the same a run would hit.
func Plan(m *manifest.Manifest) (*PlanResult, error) {
	logger := logging.GetLogger("checkout.plan")

	spec := ignore.New(m.GlobalIgnore)
	items := make([]resolve.Item, 0, len(m.Group.Items))
	for i, entry := range m.Group.Items {
		item, err := resolveAndRecord(logger, spec, m.Group, entry, i)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &PlanResult{Items: items, Ignore: spec}, nil
}

// DryRunCheckouter records checkout requests instead of running them
type DryRunCheckouter struct {
	mu       sync.Mutex
	requests []svn.CheckoutOptions
}

// Checkout records opts
func (d *DryRunCheckouter) Checkout(ctx context.Context, opts svn.CheckoutOptions) error {
	logger := logging.GetLogger("checkout.dryrun")
	logger.Info().
		Str("url", opts.URL).
		Str("dir", opts.Destination).
		Strs("args", svn.CheckoutArgs(opts)).
		Msg("Would check out")

	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append(d.requests, opts)
	return nil
}

// Requests returns the recorded requests in order
func (d *DryRunCheckouter) Requests() []svn.CheckoutOptions {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]svn.CheckoutOptions, len(d.requests))
	copy(out, d.requests)
	return out
}
