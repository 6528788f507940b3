package sessionlog

import (
	"fmt"

	"github.com/joshuadavidthomas/hostlog/internal/level"
	"github.com/joshuadavidthomas/hostlog/internal/session"
)

// Logger is a named node in the logger tree. Its level lives in the shared
// Sink; a Logger has no level of its own.
type Logger struct {
	name     string
	parent   *Logger
	facility *Facility
	sink     *Sink
}

func (l *Logger) Name() string { return l.name }

// Parent returns the next logger up the tree, or nil for the root.
func (l *Logger) Parent() *Logger { return l.parent }

// EffectiveLevel walks up the tree and returns the first threshold found on
// an attached sink, or level.NotSet if none is set.
func (l *Logger) EffectiveLevel() level.Level {
	for n := l; n != nil; n = n.parent {
		if n.sink == nil {
			continue
		}
		if t := n.sink.Threshold(); t != level.NotSet {
			return t
		}
	}
	return level.NotSet
}

// GetLevel returns the shared threshold.
func (l *Logger) GetLevel() level.Level {
	return l.EffectiveLevel()
}

// SetLevel sets the shared threshold for every logger of the facility.
func (l *Logger) SetLevel(lvl level.Level) error {
	if !lvl.Valid() {
		return fmt.Errorf("setting level on %s: %w: %d", l.name, level.ErrInvalid, int(lvl))
	}
	l.sink.setThreshold(lvl)
	return nil
}

// SetVerboseMode records the verbose flag for the session and lowers the
// threshold to INFO.
func (l *Logger) SetVerboseMode() {
	l.facility.persist(session.Verbose, true)
	l.sink.setThreshold(level.Info)
}

// SetDebugMode records the debug flag for the session and lowers the
// threshold to DEBUG.
func (l *Logger) SetDebugMode() {
	l.facility.persist(session.Debug, true)
	l.sink.setThreshold(level.Debug)
}

// ResetLevel clears both session flags and restores the runtime default.
func (l *Logger) ResetLevel() {
	l.facility.persist(session.Verbose, false)
	l.facility.persist(session.Debug, false)
	l.sink.setThreshold(l.facility.runtimeDefault)
}

// Enabled reports whether a message at lvl would be emitted.
func (l *Logger) Enabled(lvl level.Level) bool {
	return l.sink.enabled(lvl)
}

// Log emits msg at lvl when lvl passes the shared threshold. With args, msg
// is used as a fmt format string.
func (l *Logger) Log(lvl level.Level, msg any, args ...any) {
	if !l.sink.enabled(lvl) {
		return
	}
	l.sink.emit(lvl, l.name, compose(msg, args))
}

func (l *Logger) Debug(msg any, args ...any)    { l.Log(level.Debug, msg, args...) }
func (l *Logger) Info(msg any, args ...any)     { l.Log(level.Info, msg, args...) }
func (l *Logger) Warning(msg any, args ...any)  { l.Log(level.Warning, msg, args...) }
func (l *Logger) Error(msg any, args ...any)    { l.Log(level.Error, msg, args...) }
func (l *Logger) Critical(msg any, args ...any) { l.Log(level.Critical, msg, args...) }

func compose(msg any, args []any) string {
	text := fmt.Sprint(msg)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	return text
}
