package cli

import (
	"github.com/spf13/cobra"

	"github.com/joshuadavidthomas/hostlog/internal/display"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Switch the session's verbosity mode",
	Long: `Switch the verbosity mode of the whole session. The choice is saved in
the session store and applies to every later invocation.`,
}

var modeVerboseCmd = &cobra.Command{
	Use:   "verbose",
	Short: "Log INFO and above for the rest of the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, (*sessionlog.Logger).SetVerboseMode, "Verbose mode enabled")
	},
}

var modeDebugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Log everything for the rest of the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, (*sessionlog.Logger).SetDebugMode, "Debug mode enabled")
	},
}

var modeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the session flags and return to the default level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, (*sessionlog.Logger).ResetLevel, "Session modes cleared")
	},
}

func runMode(cmd *cobra.Command, apply func(*sessionlog.Logger), msg string) error {
	root := sessionlog.FromContext(cmd.Context()).Root()
	apply(root)
	lvl := root.GetLevel()

	if jsonOutput {
		return display.OutputJSON(outWriter, display.ActionResultJSON{
			Success: true,
			Message: msg,
			Level:   lvl,
		})
	}
	if quiet {
		outln(lvl)
		return nil
	}
	out("✓ %s (level %s)\n", msg, display.RenderLevel(lvl))
	return nil
}

func init() {
	modeCmd.AddCommand(modeVerboseCmd)
	modeCmd.AddCommand(modeDebugCmd)
	modeCmd.AddCommand(modeResetCmd)
}
