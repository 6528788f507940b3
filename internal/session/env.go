package session

import (
	"fmt"
	"os"
	"strconv"
)

// EnvStore keeps flags in the environment of the host process. Child
// processes started after a write inherit the flags.
type EnvStore struct{}

func (EnvStore) Lookup(name string) (bool, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("reading session flag %s: %w", name, err)
	}
	return v, nil
}

// Store sets name to "true", or removes it when value is false.
func (EnvStore) Store(name string, value bool) error {
	if !value {
		if err := os.Unsetenv(name); err != nil {
			return fmt.Errorf("clearing session flag %s: %w", name, err)
		}
		return nil
	}
	if err := os.Setenv(name, strconv.FormatBool(value)); err != nil {
		return fmt.Errorf("writing session flag %s: %w", name, err)
	}
	return nil
}
