package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuadavidthomas/hostlog/internal/config"
	"github.com/joshuadavidthomas/hostlog/internal/logging"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	jsonOutput  bool
	noColor     bool
	verbose     bool
	quiet       bool
	forcedDebug bool
	storeKind   string
)

var rootCmd = &cobra.Command{
	Use:   "hostlog",
	Short: "Session-wide logging for host-run scripts",
	Long: `hostlog runs each invocation as one script of a long-lived host session.
Verbose and debug modes persist in the session store, so every later
invocation starts at the level the session asked for.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			verbose = false
		}
		l := newConfiguredLogger()
		ctx := logging.WithLogger(cmd.Context(), l)

		// Load config from disk so malformed files surface a warning.
		if _, err := config.Init(); err != nil {
			l.Warn("config file is malformed, using defaults", "err", err)
		}

		cfg := resolveConfig()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		f, err := newFacility(cfg, l)
		if err != nil {
			return err
		}
		cmd.SetContext(sessionlog.WithFacility(ctx, f))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			out("hostlog %s\n", version)
			return nil
		}
		return statusCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().BoolVar(&forcedDebug, "forced-debug", false, "Start this invocation at DEBUG")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Session store: file, env or memory")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Commands access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
