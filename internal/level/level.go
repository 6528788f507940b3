// Package level defines the ordered verbosity levels shared by every logger
// in a host session.
package level

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is returned when a value does not name a known level.
var ErrInvalid = errors.New("invalid level")

// Level is a message severity. Higher values are more severe.
type Level int

const (
	// NotSet is returned when no threshold could be resolved.
	NotSet   Level = 0
	Debug    Level = 10
	Info     Level = 20
	Warning  Level = 30
	Error    Level = 40
	Critical Level = 50
)

// All lists the real levels from least to most severe.
var All = []Level{Debug, Info, Warning, Error, Critical}

func (l Level) String() string {
	switch l {
	case NotSet:
		return "NOTSET"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Valid reports whether l is one of the five real levels. NotSet is not valid.
func (l Level) Valid() bool {
	switch l {
	case Debug, Info, Warning, Error, Critical:
		return true
	}
	return false
}

// Enabled reports whether a message at l passes threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// Parse reads a level name (case-insensitive) or its numeric value.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error", "err":
		return Error, nil
	case "critical", "fatal":
		return Critical, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if l := Level(n); l.Valid() {
			return l, nil
		}
	}
	return NotSet, fmt.Errorf("%w: %q", ErrInvalid, s)
}

// MarshalText implements encoding.TextMarshaler so levels read naturally in
// TOML, YAML and JSON.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalid, int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
