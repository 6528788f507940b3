package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/joshuadavidthomas/hostlog/internal/config"
	"github.com/joshuadavidthomas/hostlog/internal/display"
	"github.com/joshuadavidthomas/hostlog/internal/prompt"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig()
		cfgPath := config.ConfigFile()

		if jsonOutput {
			return display.OutputJSON(outWriter, struct {
				config.Config
				Path string `json:"path"`
			}{cfg, cfgPath})
		}

		if quiet {
			outln(cfgPath)
			return nil
		}

		out("Config: %s\n\n", cfgPath)
		return toml.NewEncoder(outWriter).Encode(cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show directory paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		showState, _ := cmd.Flags().GetBool("state")

		if jsonOutput {
			if showState {
				return display.OutputJSON(outWriter, map[string]string{"state_dir": config.StateDir()})
			}
			return display.OutputJSON(outWriter, map[string]string{
				"config_dir":   config.ConfigDir(),
				"config_file":  config.ConfigFile(),
				"state_dir":    config.StateDir(),
				"session_file": config.SessionFile(),
			})
		}

		switch {
		case showState:
			outln(config.StateDir())
		case quiet:
			outln(config.ConfigDir())
		default:
			out("Config dir:    %s\n", config.ConfigDir())
			out("Config file:   %s\n", config.ConfigFile())
			out("State dir:     %s\n", config.StateDir())
			out("Session file:  %s\n", config.SessionFile())
		}
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !jsonOutput {
			ok, err := prompt.Default.Confirm(prompt.ConfirmConfig{
				Title: "Reset configuration to defaults?",
			})
			if err != nil {
				return err
			}
			if !ok {
				outln("Reset cancelled")
				return nil
			}
		}

		if err := os.Remove(config.ConfigFile()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("resetting config: %w", err)
		}

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ActionResultJSON{
				Success: true,
				Message: "Configuration reset to defaults",
			})
		}

		outln("✓ Configuration reset to defaults")
		return nil
	},
}

func init() {
	configPathCmd.Flags().BoolP("state", "s", false, "Show state directory only")
	configResetCmd.Flags().BoolP("confirm", "y", false, "Skip confirmation")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}
