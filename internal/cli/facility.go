package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/joshuadavidthomas/hostlog/internal/config"
	"github.com/joshuadavidthomas/hostlog/internal/display"
	"github.com/joshuadavidthomas/hostlog/internal/format"
	"github.com/joshuadavidthomas/hostlog/internal/session"
	"github.com/joshuadavidthomas/hostlog/internal/sessionlog"
)

// resolveConfig returns the loaded config with command-line flags applied.
func resolveConfig() config.Config {
	cfg := config.Get()
	if storeKind != "" {
		cfg.Session.Store = storeKind
	}
	if forcedDebug {
		cfg.ForcedDebug = true
	}
	if noColor {
		cfg.Format.Color = config.ColorNever
	}
	return cfg
}

func newStore(cfg config.Config) session.Store {
	switch cfg.Session.Store {
	case config.StoreEnv:
		return session.EnvStore{}
	case config.StoreMemory:
		return session.NewMemoryStore()
	default:
		return session.NewFileStore(config.SessionFile())
	}
}

func newOutputs(cfg config.Config) ([]sessionlog.Output, error) {
	if cfg.Output == config.OutputFile {
		o, err := sessionlog.NewFileOutput(filepath.Join(config.StateDir(), "hostlog.log"))
		if err != nil {
			return nil, fmt.Errorf("output: %w", err)
		}
		return []sessionlog.Output{o}, nil
	}
	return []sessionlog.Output{sessionlog.NewConsoleOutput(outWriter)}, nil
}

// newDispatcher picks the color profile for outWriter and caps boxed lines
// at the terminal width.
func newDispatcher(cfg config.Config) *format.Dispatcher {
	r := lipgloss.NewRenderer(outWriter)
	term, tty := outTerminal()
	switch cfg.Format.Color {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		if !tty {
			r.SetColorProfile(termenv.ANSI256)
		}
	default:
		if !tty {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	d := format.DefaultDispatcher(r, format.Styles{
		Pattern:            cfg.Format.Pattern,
		ErrorBackground:    cfg.Format.ErrorBackground,
		CriticalBackground: cfg.Format.CriticalBackground,
	})
	if tty {
		d = d.WithMaxWidth(display.TerminalWidth(term, 0))
	}
	return d
}

func newFacility(cfg config.Config, diag *log.Logger) (*sessionlog.Facility, error) {
	outputs, err := newOutputs(cfg)
	if err != nil {
		return nil, err
	}
	return sessionlog.New(sessionlog.Options{
		Addon:         cfg.Session.Addon,
		Store:         newStore(cfg),
		ForcedDebug:   cfg.ForcedDebug,
		StaticDefault: cfg.DefaultLevel,
		Outputs:       outputs,
		Renderer:      newDispatcher(cfg),
		Preprocessor:  format.Preprocessor{Separator: cfg.Separator()},
		Diagnostics:   diag,
	})
}
