package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuadavidthomas/hostlog/internal/config"
	"github.com/joshuadavidthomas/hostlog/internal/display"
	"github.com/joshuadavidthomas/hostlog/internal/prompt"
	"github.com/joshuadavidthomas/hostlog/internal/session"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the session store",
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "End the session and forget every saved flag",
	Long: `End the session. With the file store this removes the session file, which
drops the flags of every addon sharing it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !jsonOutput {
			ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
				Title:       "End the logging session?",
				Description: "Verbose and debug modes will be cleared.",
			})
			if err != nil {
				return err
			}
			if !ok {
				outln("Clear cancelled")
				return nil
			}
		}

		root := sessionlog.FromContext(cmd.Context()).Root()
		root.ResetLevel()

		if resolveConfig().Session.Store == config.StoreFile {
			if err := session.NewFileStore(config.SessionFile()).Clear(); err != nil {
				return fmt.Errorf("ending session: %w", err)
			}
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ActionResultJSON{
				Success: true,
				Message: "Session cleared",
				Level:   root.GetLevel(),
			})
		}
		outln("✓ Session cleared")
		return nil
	},
}

func init() {
	sessionClearCmd.Flags().BoolP("confirm", "y", false, "Skip confirmation")
	sessionCmd.AddCommand(sessionClearCmd)
}
