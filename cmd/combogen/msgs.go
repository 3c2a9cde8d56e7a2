package combogen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate every combination of a text template"
	MsgGenerateShort   = "Render all combinations and write them to the destinations"
	MsgPreviewShort    = "Print rendered blocks to standard output"
	MsgListShort       = "List combinations as a table"
	MsgInitShort       = "Write a starter configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten  = "Wrote starter configuration to %s\n"
	MsgVersionFormat  = "combogen version %s\n  commit: %s\n  built:  %s\n"
	MsgPreviewTrimmed = "\n... %d more blocks not shown\n"

	// Error messages
	MsgErrAllFailed    = "all %d destinations failed"
	MsgErrConfigExists = "%s already exists (use --force to overwrite)"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagConfig  = "Path to the config file (TOML or YAML)"
	MsgFlagOutput  = "Output file name written inside each destination"
	MsgFlagDest    = "Destination directory (repeatable, replaces configured destinations)"
	MsgFlagPrefix  = "Placeholder token prefix"
	MsgFlagDryRun  = "Show what would be written without touching the filesystem"
	MsgFlagLimit   = "Show at most this many combinations (0 for all)"
	MsgFlagForce   = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/preview-long.txt
	msgPreviewLongRaw string
	MsgPreviewLong    = strings.TrimSpace(msgPreviewLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
