package checkout

import (
	"context"

	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/filesystem"
	"github.com/arthur-debert/svnmanifest/pkg/ignore"
	"github.com/arthur-debert/svnmanifest/pkg/logging"
	"github.com/arthur-debert/svnmanifest/pkg/manifest"
	"github.com/arthur-debert/svnmanifest/pkg/resolve"
	"github.com/arthur-debert/svnmanifest/pkg/svn"
	"github.com/arthur-debert/svnmanifest/pkg/types"
	"github.com/rs/zerolog"
)

// Stage names a step of a run, used in logs
type Stage string

const (
	StageLoading     Stage = "loading"
	StageResolving   Stage = "resolving"
	StageCheckingOut Stage = "checking-out"
	StageFinalizing  Stage = "finalizing"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// Checkouter performs one checkout
type Checkouter interface {
	Checkout(ctx context.Context, opts svn.CheckoutOptions) error
}

// Options configures a run
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS

	// ManifestPath defaults to manifest.DefaultPath
	ManifestPath string

	// TargetDir receives the ignore file; defaults to "."
	TargetDir string

	// IgnoreFile defaults to ignore.DefaultFileName
	IgnoreFile string

	Quiet  bool
	Client Checkouter
}

// Result describes a successful run
type Result struct {
	Items      []resolve.Item
	IgnorePath string
	Lines      int
}

// Run loads the manifest at opts.ManifestPath and runs it
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts = withDefaults(opts)
	logger := logging.GetLogger("checkout.run")
	logStage(logger, StageLoading).Str("manifest", opts.ManifestPath).Msg("Loading manifest")

	m, err := manifest.Parse(opts.FS, opts.ManifestPath)
	if err != nil {
		logStage(logger, StageFailed).Err(err).Msg("Manifest could not be loaded")
		return nil, err
	}

	return RunManifest(ctx, m, opts)
}

// RunManifest checks out every item of m in order, then writes the ignore
// file. The first failure aborts the run.
func RunManifest(ctx context.Context, m *manifest.Manifest, opts Options) (*Result, error) {
	opts = withDefaults(opts)
	logger := logging.GetLogger("checkout.run")

	if opts.Client == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no checkout client configured")
	}

	logger.Debug().
		Strs("gitignore", m.GlobalIgnore).
		Int("items", len(m.Group.Items)).
		Interface("revision", m.Group.DefaultRevision).
		Msg("Manifest loaded")

	spec := ignore.New(m.GlobalIgnore)
	result := &Result{Items: make([]resolve.Item, 0, len(m.Group.Items))}

	for i, entry := range m.Group.Items {
		item, err := resolveAndRecord(logger, spec, m.Group, entry, i)
		if err != nil {
			logStage(logger, StageFailed).Int("item", i).Err(err).Msg("Item could not be resolved")
			return nil, err
		}

		req := svn.CheckoutOptions{
			Quiet:       opts.Quiet,
			Revision:    item.Revision,
			URL:         item.URL.String(),
			Destination: item.Dir,
		}
		logStage(logger, StageCheckingOut).
			Int("item", i).
			Str("url", req.URL).
			Str("dir", req.Destination).
			Interface("revision", req.Revision).
			Msg("Checking out")

		if err := opts.Client.Checkout(ctx, req); err != nil {
			logStage(logger, StageFailed).Int("item", i).Err(err).Msg("Checkout failed")
			return nil, err
		}
		result.Items = append(result.Items, item)
	}

	logStage(logger, StageFinalizing).Str("dir", opts.TargetDir).Msg("Writing ignore file")
	path, err := ignore.Materialize(opts.FS, spec, opts.TargetDir, opts.IgnoreFile)
	if err != nil {
		logStage(logger, StageFailed).Err(err).Msg("Ignore file could not be written")
		return nil, err
	}
	result.IgnorePath = path
	result.Lines = len(spec.Lines())

	logStage(logger, StageDone).
		Int("items", len(result.Items)).
		Str("ignore", path).
		Msg("Checkout complete")
	return result, nil
}

// resolveAndRecord resolves one entry and records its ignore fragment
func resolveAndRecord(logger zerolog.Logger, spec *ignore.Spec, group manifest.SvnGroup, entry manifest.SvnItem, index int) (resolve.Item, error) {
	logStage(logger, StageResolving).Int("item", index).Str("url", entry.URL).Msg("Resolving item")

	item, err := resolve.Resolve(group, entry)
	if err != nil {
		return resolve.Item{}, err
	}

	if item.Ignore != nil {
		spec.Record(item.Dir, item.Ignore.Exclude, item.Ignore.Include)
	}
	return item, nil
}

func withDefaults(opts Options) Options {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.ManifestPath == "" {
		opts.ManifestPath = manifest.DefaultPath
	}
	if opts.TargetDir == "" {
		opts.TargetDir = "."
	}
	if opts.IgnoreFile == "" {
		opts.IgnoreFile = ignore.DefaultFileName
	}
	return opts
}

func logStage(logger zerolog.Logger, stage Stage) *zerolog.Event {
	return logger.Debug().Str("stage", string(stage))
}
