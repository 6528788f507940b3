package cli

import (
	"github.com/spf13/cobra"

	"github.com/joshuadavidthomas/hostlog/internal/config"
	"github.com/joshuadavidthomas/hostlog/internal/display"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

var statusYAML bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session flags and logging level",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sessionStatus(sessionlog.FromContext(cmd.Context()), resolveConfig())

		switch {
		case jsonOutput:
			return display.OutputJSON(outWriter, s)
		case statusYAML:
			return display.OutputYAML(outWriter, s)
		case quiet:
			outln(s.Level)
			return nil
		}
		out("%s", display.RenderStatus(s))
		return nil
	},
}

func sessionStatus(f *sessionlog.Facility, cfg config.Config) display.StatusJSON {
	s := display.StatusJSON{
		Addon:          f.Addon(),
		Store:          cfg.Session.Store,
		Flags:          f.Flags(),
		ForcedDebug:    cfg.ForcedDebug,
		RuntimeDefault: f.RuntimeDefault(),
		Level:          f.Root().GetLevel(),
	}
	if cfg.Session.Store == config.StoreFile {
		s.SessionFile = config.SessionFile()
	}
	return s
}

func init() {
	statusCmd.Flags().BoolVar(&statusYAML, "yaml", false, "Output as YAML")
}
