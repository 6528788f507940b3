package testenv

import "path/filepath"

// Dirs contains isolated directories for hostlog config and session state in tests.
type Dirs struct {
	Base   string
	Config string
	State  string
}

// HostlogDirs returns conventional test directories rooted at base.
func HostlogDirs(base string) Dirs {
	return Dirs{
		Base:   base,
		Config: filepath.Join(base, "config"),
		State:  filepath.Join(base, "state"),
	}
}

// ApplyHostlog points HOSTLOG_* directories at base and clears the
// variables that would otherwise leak host settings into a test.
func ApplyHostlog(setenv func(string, string), base string) Dirs {
	dirs := HostlogDirs(base)
	setenv("HOSTLOG_CONFIG_DIR", dirs.Config)
	setenv("HOSTLOG_STATE_DIR", dirs.State)
	for _, name := range []string{
		"HOSTLOG_ADDON", "HOSTLOG_STORE", "HOSTLOG_DEFAULT_LEVEL",
		"HOSTLOG_NO_COLOR", "HOSTLOG_FORCED_DEBUG",
	} {
		setenv(name, "")
	}
	return dirs
}
