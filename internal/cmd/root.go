package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/zindex-tree/internal/config"
	"github.com/harrison/zindex-tree/internal/logger"
	"github.com/harrison/zindex-tree/internal/report"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for zindex-tree
func NewRootCommand() *cobra.Command {
	var (
		formatFlag   string
		logLevelFlag string
		colorFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "zindex-tree <DIRECTORY>",
		Short: "Report z-index declarations in a front-end source tree",
		Long: `zindex-tree walks DIRECTORY for .js, .jsx, .ts and .tsx files and lists
every stacking-order declaration it finds, highest value first:

  z-[123]       utility class, bracketed value
  z-45          utility class, bare value
  zIndex: 10    style object property
  z-index: 10   CSS property

Hidden directories and node_modules are skipped. Only the first
declaration on each line is reported. Files that cannot be read are
reported on stderr and do not stop the scan.

Output is plain text unless --color is given; colors are applied only
when the stream is a terminal.`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.Root = args[0]

			var formatPtr, logLevelPtr *string
			var colorPtr *bool
			if cmd.Flags().Changed("format") {
				formatPtr = &formatFlag
			}
			if cmd.Flags().Changed("log-level") {
				logLevelPtr = &logLevelFlag
			}
			if cmd.Flags().Changed("color") {
				colorPtr = &colorFlag
			}
			cfg.MergeWithFlags(formatPtr, logLevelPtr, colorPtr)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return runWithOutput(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&formatFlag, "format", report.FormatTree,
		fmt.Sprintf("output format (%s)", strings.Join(report.Formats, ", ")))
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "warn",
		"diagnostic verbosity (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&colorFlag, "color", false, "color the tree report and diagnostics on a terminal")

	return cmd
}

// runWithOutput wires the logger and renderer colors for the given streams.
func runWithOutput(cfg *config.Config, stdout, stderr io.Writer) error {
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if !cfg.Color {
		log.DisableColor()
	}

	_, err := Run(cfg, stdout, log, reportColor(cfg, stdout))
	return err
}

// reportColor reports whether the tree report written to w gets ANSI colors.
func reportColor(cfg *config.Config, w io.Writer) bool {
	return cfg.Color && logger.IsTerminal(w)
}
