package combogen

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/combogen/internal/version"
	"github.com/arthur-debert/combogen/pkg/combos"
	"github.com/arthur-debert/combogen/pkg/config"
	"github.com/arthur-debert/combogen/pkg/errors"
	"github.com/arthur-debert/combogen/pkg/logging"
	"github.com/arthur-debert/combogen/pkg/output"
	"github.com/arthur-debert/combogen/pkg/ui"
	"github.com/arthur-debert/combogen/pkg/ui/styles"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errLimitReached ends a combination walk once enough rows are collected.
var errLimitReached = stderrors.New("limit reached")

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		noColor    bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "combogen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			disable := noColor || !stdoutIsTerminal()
			styles.SetNoColor(disable)
			if disable {
				pterm.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// addOverrideFlags registers the flags that map onto config keys.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().StringSliceP("dest", "d", nil, MsgFlagDest)
	cmd.Flags().String("prefix", "", MsgFlagPrefix)
}

// loadConfig reads configuration, applying any override flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})

	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		overrides["output_filename"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("dest"); f != nil && f.Changed {
		dests, _ := cmd.Flags().GetStringSlice("dest")
		overrides["destinations"] = dests
	}
	if f := cmd.Flags().Lookup("prefix"); f != nil && f.Changed {
		overrides["placeholder_prefix"] = f.Value.String()
	}

	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(config.LoadOptions{
		Path:      configPath,
		Overrides: overrides,
	})
}

// prepare loads config and renders every block.
func prepare(cmd *cobra.Command) (*config.Config, *combos.Generator, []string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	gen, err := combos.New(cfg.GeneratorOptions())
	if err != nil {
		return nil, nil, nil, err
	}

	done := logging.LogOperationStart(logging.GetLogger("cmd.generate"), "render")
	blocks, err := gen.Generate()
	done()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, gen, blocks, nil
}

func summaryFor(cfg *config.Config, total int) ui.Summary {
	return ui.Summary{
		Label:     cfg.Label(),
		Values:    len(cfg.Values),
		Positions: len(cfg.Positions),
		Total:     total,
	}
}

func newGenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.generate")

			cfg, _, blocks, err := prepare(cmd)
			if err != nil {
				return err
			}
			summary := summaryFor(cfg, len(blocks))
			out := cmd.OutOrStdout()

			if dryRun {
				paths := make([]string, len(cfg.Destinations))
				for i, d := range cfg.Destinations {
					paths[i] = filepath.Join(d, cfg.OutputFilename)
				}
				ui.PrintPlan(out, paths, summary)
				return nil
			}

			report := output.NewOSWriter().WriteAll(blocks, cfg.Destinations, cfg.OutputFilename)
			ui.PrintReport(out, report, summary)

			logger.Info().
				Int("blocks", report.Blocks).
				Int("succeeded", len(report.Succeeded())).
				Int("failed", len(report.Failed())).
				Msg("generate finished")

			if report.AllFailed() {
				return errors.Newf(errors.ErrAllDestinationsFailed, MsgErrAllFailed, len(report.Results))
			}
			return nil
		},
	}

	addOverrideFlags(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, blocks, err := prepare(cmd)
			if err != nil {
				return err
			}

			shown := blocks
			if limit > 0 && limit < len(blocks) {
				shown = blocks[:limit]
			}
			out := cmd.OutOrStdout()
			if err := output.RenderTo(out, shown); err != nil {
				return err
			}
			fmt.Fprintln(out)
			if len(shown) < len(blocks) {
				fmt.Fprintf(out, MsgPreviewTrimmed, len(blocks)-len(shown))
			}
			return nil
		},
	}

	addOverrideFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, MsgFlagLimit)
	return cmd
}

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gen, err := combos.New(cfg.GeneratorOptions())
			if err != nil {
				return err
			}

			var rows [][]string
			err = gen.Each(func(c combos.Combination) error {
				if limit > 0 && len(rows) >= limit {
					return errLimitReached
				}
				rows = append(rows, c.Values)
				return nil
			})
			if err != nil && !stderrors.Is(err, errLimitReached) {
				return err
			}

			table, err := ui.CombinationTable(gen.Tokens(), rows)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, table)
			ui.PrintSummary(out, summaryFor(cfg, gen.Count()))
			return nil
		},
	}

	addOverrideFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, MsgFlagLimit)
	return cmd
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init [path]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "combogen.toml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExists, path)
			}

			data, err := config.Encode(config.Sample())
			if err != nil {
				return err
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir)
				}
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
