package svnmanifest

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Check out Subversion repositories listed in a manifest"
	MsgPlanShort       = "Show what a run would check out"
	MsgIgnoreShort     = "Print the ignore file a run would write"
	MsgInitShort       = "Create a starter manifest"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice      = "DRY RUN MODE - nothing was checked out or written"
	MsgDryRunCommands    = "Would run:"
	MsgDryRunCommand     = "  %s %s"
	MsgDryRunIgnore      = "Would write %s:"
	MsgPlanIgnoreHeader  = "Ignore file %s:"
	MsgPlanNoItems       = "The manifest lists no items."
	MsgManifestCreated   = "Created %s"
	MsgVersionFormat     = "svnmanifest version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigSource      = "# loaded from %s"
	MsgConfigNoSources   = "# no config files found, showing defaults"
	MsgRevisionHead      = "HEAD"
	MsgIgnoreNone        = "-"
	MsgIgnoreExcludeItem = "-%s"
	MsgIgnoreIncludeItem = "+%s"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet    = "Suppress checkout progress output and non-error logging"
	MsgFlagDryRun   = "Preview the checkouts and ignore file without running svn"
	MsgFlagManifest = "Manifest file (default manifest.yml)"
	MsgFlagFormat   = "Output format: auto, color or plain"
	MsgFlagForce    = "Overwrite an existing manifest"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/ignore-long.txt
	msgIgnoreLongRaw string
	MsgIgnoreLong    = strings.TrimSpace(msgIgnoreLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
