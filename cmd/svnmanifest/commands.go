package svnmanifest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/svnmanifest/internal/version"
	"github.com/arthur-debert/svnmanifest/pkg/checkout"
	"github.com/arthur-debert/svnmanifest/pkg/config"
	"github.com/arthur-debert/svnmanifest/pkg/errors"
	"github.com/arthur-debert/svnmanifest/pkg/filesystem"
	"github.com/arthur-debert/svnmanifest/pkg/logging"
	"github.com/arthur-debert/svnmanifest/pkg/manifest"
	"github.com/arthur-debert/svnmanifest/pkg/resolve"
	"github.com/arthur-debert/svnmanifest/pkg/svn"
	"github.com/arthur-debert/svnmanifest/pkg/ui"
)

// annotationNoConfig marks commands that run without loading configuration
const annotationNoConfig = "svnmanifest.no-config"

// settings holds flag values and the configuration they resolve to
type settings struct {
	verbosity int
	quiet     bool
	dryRun    bool
	manifest  string
	format    string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	s := &settings{}

	rootCmd := &cobra.Command{
		Use:     "svnmanifest",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(s.verbosity, s.quiet)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			if cmd.Annotations[annotationNoConfig] == "true" {
				return nil
			}
			return s.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(cmd, s)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&s.quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.PersistentFlags().StringVarP(&s.manifest, "manifest", "m", "", MsgFlagManifest)
	rootCmd.PersistentFlags().StringVar(&s.format, "format", "", MsgFlagFormat)
	rootCmd.Flags().BoolVar(&s.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPlanCmd(s))
	rootCmd.AddCommand(newIgnoreCmd(s))
	rootCmd.AddCommand(newInitCmd(s))
	rootCmd.AddCommand(newConfigCmd(s))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// load resolves the configuration, letting flags that were set win
func (s *settings) load(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("manifest") {
		overrides["manifest.path"] = s.manifest
	}
	if flags.Changed("quiet") {
		overrides["output.quiet"] = s.quiet
	}
	if flags.Changed("format") {
		overrides["output.format"] = s.format
	}

	cfg, err := config.Load(config.LoadOptions{Overrides: overrides})
	if err != nil {
		return err
	}
	if cfg.Output.Quiet != s.quiet {
		logging.SetLevel(s.verbosity, cfg.Output.Quiet)
	}
	s.cfg = cfg
	return nil
}

func (s *settings) renderer(cmd *cobra.Command) *ui.Renderer {
	format, err := ui.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		format = ui.FormatAuto
	}
	return ui.NewRenderer(cmd.OutOrStdout(), format)
}

func (s *settings) ignorePath() string {
	return filepath.Join(s.cfg.Ignore.Dir, s.cfg.Ignore.File)
}

func (s *settings) checkoutOptions() checkout.Options {
	return checkout.Options{
		FS:           filesystem.NewOS(),
		ManifestPath: s.cfg.Manifest.Path,
		TargetDir:    s.cfg.Ignore.Dir,
		IgnoreFile:   s.cfg.Ignore.File,
		Quiet:        s.cfg.Output.Quiet,
	}
}

func (s *settings) plan() (*checkout.PlanResult, error) {
	m, err := manifest.Parse(filesystem.NewOS(), s.cfg.Manifest.Path)
	if err != nil {
		return nil, err
	}
	return checkout.Plan(m)
}

// runCheckout is the root command: check out every item, then write the
// ignore file. Success prints nothing beyond svn's own output.
func runCheckout(cmd *cobra.Command, s *settings) error {
	logger := logging.GetLogger("cmd.checkout")
	done := logging.LogOperationStart(logger, "checkout")
	defer done()

	opts := s.checkoutOptions()
	if s.dryRun {
		return runDryRun(cmd, s, opts)
	}

	// the tool must exist before any item is attempted
	client, err := svn.New(s.cfg.Tools.Svn,
		svn.WithStdout(cmd.OutOrStdout()),
		svn.WithStderr(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	opts.Client = client

	result, err := checkout.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	logger.Info().
		Int("items", len(result.Items)).
		Str("ignore", result.IgnorePath).
		Int("lines", result.Lines).
		Msg("All items checked out")
	return nil
}

// runDryRun performs a full run against a recording client and a
// copy-on-write overlay, so the real tree is never touched
func runDryRun(cmd *cobra.Command, s *settings, opts checkout.Options) error {
	overlay := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
	opts.FS = filesystem.NewAferoFS(overlay)

	dry := &checkout.DryRunCheckouter{}
	opts.Client = dry

	result, err := checkout.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	data, err := opts.FS.ReadFile(result.IgnorePath)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot read planned ignore file")
	}

	r := s.renderer(cmd)
	r.Message("Header", MsgDryRunCommands)
	for _, req := range dry.Requests() {
		r.Message("URL", MsgDryRunCommand, s.cfg.Tools.Svn, strings.Join(svn.CheckoutArgs(req), " "))
	}
	r.Message("Header", MsgDryRunIgnore, result.IgnorePath)
	r.IgnoreLines(splitLines(string(data)))
	r.Message("Warning", MsgDryRunNotice)
	return nil
}

func newPlanCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := s.plan()
			if err != nil {
				return err
			}

			r := s.renderer(cmd)
			if len(plan.Items) == 0 {
				r.Message("Muted", MsgPlanNoItems)
			} else {
				rows := make([][]string, 0, len(plan.Items))
				for _, item := range plan.Items {
					rows = append(rows, planRow(r, item))
				}
				if err := r.Table([]string{"DIR", "URL", "REVISION", "IGNORE"}, rows); err != nil {
					return err
				}
			}

			if lines := plan.Ignore.Lines(); len(lines) > 0 {
				r.Message("Header", MsgPlanIgnoreHeader, s.ignorePath())
				r.IgnoreLines(lines)
			}
			return nil
		},
	}
}

func planRow(r *ui.Renderer, item resolve.Item) []string {
	rev := MsgRevisionHead
	if item.Revision != nil {
		rev = strconv.Itoa(*item.Revision)
	}

	var ignore []string
	if item.Ignore != nil {
		for _, p := range item.Ignore.Exclude {
			ignore = append(ignore, fmt.Sprintf(MsgIgnoreExcludeItem, p))
		}
		for _, p := range item.Ignore.Include {
			ignore = append(ignore, fmt.Sprintf(MsgIgnoreIncludeItem, p))
		}
	}
	ignoreCell := MsgIgnoreNone
	if len(ignore) > 0 {
		ignoreCell = strings.Join(ignore, " ")
	}

	return []string{
		r.Render("Dir", item.Dir),
		r.Render("URL", item.URL.String()),
		r.Render("Revision", rev),
		r.Render("Muted", ignoreCell),
	}
}

func newIgnoreCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "ignore",
		Short:   MsgIgnoreShort,
		Long:    MsgIgnoreLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := s.plan()
			if err != nil {
				return err
			}
			s.renderer(cmd).IgnoreLines(plan.Ignore.Lines())
			return nil
		},
	}
}

func newInitCmd(s *settings) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := filesystem.NewOS()
			path := s.cfg.Manifest.Path

			if _, err := fsys.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrFileExists, "%s already exists, use --force to replace it", path).
					WithDetail("path", path)
			}

			log.Info().Str("path", path).Bool("force", force).Msg("Writing starter manifest")
			if err := fsys.WriteFile(path, manifest.Starter(manifest.FormatForPath(path)), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
					WithDetail("path", path)
			}

			s.renderer(cmd).Message("Success", MsgManifestCreated, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newConfigCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := s.cfg.TOML()
			if err != nil {
				return err
			}

			r := s.renderer(cmd)
			if len(s.cfg.Sources) == 0 {
				r.Message("Muted", MsgConfigNoSources)
			}
			for _, src := range s.cfg.Sources {
				r.Message("Muted", MsgConfigSource, src)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Args:        cobra.NoArgs,
		GroupID:     "misc",
		Annotations: map[string]string{annotationNoConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		Annotations:           map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
