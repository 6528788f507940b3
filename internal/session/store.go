// Package session persists the verbose/debug choice across script
// invocations that share one host session but not one process lifetime.
//
// Backends report failures as errors. Callers that need the soft contract
// (a failed read is "flag not set", a failed write is ignored) use Get and
// Set, which never fail.
package session

import "fmt"

// Flag identifies one of the persisted session booleans.
type Flag int

const (
	Verbose Flag = iota
	Debug
)

func (f Flag) String() string {
	switch f {
	case Verbose:
		return "verbose"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("Flag(%d)", int(f))
	}
}

// FlagName returns the addon-qualified key under which f is stored,
// e.g. "pyRevit_debugISC".
func FlagName(addon string, f Flag) string {
	return addon + "_" + f.String() + "ISC"
}

// Store is a key/value store of booleans scoped to the host session.
type Store interface {
	// Lookup returns false with a nil error when name has no entry.
	Lookup(name string) (bool, error)
	Store(name string, value bool) error
}

// Get reads name from s, treating any failure as false. The error is
// returned for diagnostics only.
func Get(s Store, name string) (bool, error) {
	v, err := s.Lookup(name)
	if err != nil {
		return false, err
	}
	return v, nil
}

// Flags is a point-in-time read of both session flags.
type Flags struct {
	Verbose bool `json:"verbose" yaml:"verbose"`
	Debug   bool `json:"debug" yaml:"debug"`
}

// Snapshot reads both flags for addon. Read failures count as unset.
func Snapshot(s Store, addon string) Flags {
	verbose, _ := Get(s, FlagName(addon, Verbose))
	debug, _ := Get(s, FlagName(addon, Debug))
	return Flags{Verbose: verbose, Debug: debug}
}
