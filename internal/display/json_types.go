package display

import (
	"github.com/joshuadavidthomas/hostlog/internal/level"
	"github.com/joshuadavidthomas/hostlog/internal/session"
)

// StatusJSON is the machine-readable form of `hostlog status`.
type StatusJSON struct {
	Addon          string        `json:"addon" yaml:"addon"`
	Store          string        `json:"store" yaml:"store"`
	SessionFile    string        `json:"session_file,omitempty" yaml:"session_file,omitempty"`
	Flags          session.Flags `json:"flags" yaml:"flags"`
	ForcedDebug    bool          `json:"forced_debug" yaml:"forced_debug"`
	RuntimeDefault level.Level   `json:"runtime_default" yaml:"runtime_default"`
	Level          level.Level   `json:"level" yaml:"level"`
}

// ActionResultJSON reports the outcome of a state-changing command.
type ActionResultJSON struct {
	Success bool        `json:"success" yaml:"success"`
	Message string      `json:"message" yaml:"message"`
	Level   level.Level `json:"level,omitempty" yaml:"level,omitempty"`
}
