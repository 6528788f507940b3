package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuadavidthomas/hostlog/internal/level"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

var logCmd = &cobra.Command{
	Use:   "log [flags] MESSAGE...",
	Short: "Write a message through the session logger",
	Long: `Write a message as the named script logger. Messages below the session
level are dropped. Path separators become "/" and :shortcodes: become emoji.`,
	Example: `  hostlog log --name core.parser "could not read file"
  hostlog log --level error "build failed :cross_mark:"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		lvlName, _ := cmd.Flags().GetString("level")

		lvl, err := level.Parse(lvlName)
		if err != nil {
			return err
		}

		f := sessionlog.FromContext(cmd.Context())
		f.GetLogger(name).Log(lvl, strings.Join(args, " "))
		return nil
	},
}

func init() {
	logCmd.Flags().StringP("name", "n", "script", "Logger name (dot-separated)")
	logCmd.Flags().StringP("level", "l", "info", "Message level")
}
