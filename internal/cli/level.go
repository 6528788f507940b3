package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuadavidthomas/hostlog/internal/display"
	"github.com/joshuadavidthomas/hostlog/internal/level"
	"github.com/joshuadavidthomas/hostlog/internal/prompt"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

var levelCmd = &cobra.Command{
	Use:   "level [LEVEL]",
	Short: "Show or set the logging level",
	Long: `Show the current logging level, or set it for this invocation.
A level set here is not saved; use "hostlog mode" to change the session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pick, _ := cmd.Flags().GetBool("pick")
		root := sessionlog.FromContext(cmd.Context()).Root()

		var name string
		switch {
		case len(args) == 1:
			name = args[0]
		case pick:
			v, err := pickLevel(root.GetLevel())
			if err != nil {
				return err
			}
			name = v
		}

		if name != "" {
			lvl, err := level.Parse(name)
			if err != nil {
				return err
			}
			if err := root.SetLevel(lvl); err != nil {
				return err
			}
		}

		lvl := root.GetLevel()
		if jsonOutput {
			return display.OutputJSON(outWriter, map[string]level.Level{"level": lvl})
		}
		if quiet {
			outln(lvl)
			return nil
		}
		outln(display.RenderLevel(lvl))
		return nil
	},
}

func pickLevel(current level.Level) (string, error) {
	opts := make([]prompt.SelectOption, 0, len(level.All))
	for _, l := range level.All {
		opts = append(opts, prompt.SelectOption{Label: l.String(), Value: l.String()})
	}
	v, err := prompt.Default.Select(prompt.SelectConfig{
		Title:   "Logging level",
		Options: opts,
		Initial: current.String(),
	})
	if err != nil {
		return "", fmt.Errorf("picking level: %w", err)
	}
	return v, nil
}

func init() {
	levelCmd.Flags().BoolP("pick", "p", false, "Choose the level interactively")
}
