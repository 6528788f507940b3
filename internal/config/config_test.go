package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"github.com/joshuadavidthomas/hostlog/internal/level"
)

// Helpers

func setupTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOSTLOG_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("HOSTLOG_STATE_DIR", filepath.Join(dir, "state"))
	// Clear env override variables so tests aren't affected by the host environment.
	for _, name := range []string{
		"HOSTLOG_ADDON", "HOSTLOG_STORE", "HOSTLOG_DEFAULT_LEVEL",
		"HOSTLOG_NO_COLOR", "HOSTLOG_FORCED_DEBUG",
	} {
		t.Setenv(name, "")
	}
	// Reset global config so tests don't leak state.
	configMu.Lock()
	globalConfig = nil
	configMu.Unlock()
	return dir
}

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

// DefaultConfig

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultLevel != level.Warning {
		t.Errorf("DefaultLevel = %v, want WARNING", cfg.DefaultLevel)
	}
	if cfg.Output != OutputStdout {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputStdout)
	}
	if cfg.Session.Addon != "hostlog" {
		t.Errorf("Session.Addon = %q", cfg.Session.Addon)
	}
	if cfg.Session.Store != StoreFile {
		t.Errorf("Session.Store = %q, want %q", cfg.Session.Store, StoreFile)
	}
	if cfg.Format.Color != ColorAuto {
		t.Errorf("Format.Color = %q, want %q", cfg.Format.Color, ColorAuto)
	}
	if cfg.ForcedDebug {
		t.Error("ForcedDebug should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// Validate

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad store", func(c *Config) { c.Session.Store = "registry" }, "session.store"},
		{"bad output", func(c *Config) { c.Output = "syslog" }, "output"},
		{"bad color", func(c *Config) { c.Format.Color = "sometimes" }, "format.color"},
		{"bad level", func(c *Config) { c.DefaultLevel = level.NotSet }, "default_level"},
		{"bad separator", func(c *Config) { c.Format.PathSeparator = "//" }, "format.path_separator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() = %v, want an error naming %s", err, tt.field)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Separator() != 0 {
		t.Errorf("Separator() = %q, want 0 when unset", cfg.Separator())
	}
	cfg.Format.PathSeparator = `\`
	if cfg.Separator() != '\\' {
		t.Errorf("Separator() = %q, want backslash", cfg.Separator())
	}
}

// Load / Save

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := setupTempDir(t)

	cfg, err := Load(filepath.Join(dir, "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultLevel != level.Warning || cfg.Session.Store != StoreFile {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := setupTempDir(t)
	path := filepath.Join(dir, "config.toml")
	writeTestFile(t, path, []byte(`default_level = "error"

[session]
addon = "pyRevit"
store = "env"

[format]
path_separator = '\'
`))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultLevel != level.Error {
		t.Errorf("DefaultLevel = %v, want ERROR", cfg.DefaultLevel)
	}
	if cfg.Session.Addon != "pyRevit" || cfg.Session.Store != StoreEnv {
		t.Errorf("Session = %+v", cfg.Session)
	}
	if cfg.Separator() != '\\' {
		t.Errorf("Separator() = %q", cfg.Separator())
	}
	// Fields absent from the file keep their defaults.
	if cfg.Format.Color != ColorAuto {
		t.Errorf("Format.Color = %q, want default", cfg.Format.Color)
	}
}

func TestLoad_MalformedTOML_ReturnsDefaultsAndError(t *testing.T) {
	dir := setupTempDir(t)
	path := filepath.Join(dir, "bad.toml")
	writeTestFile(t, path, []byte("this is not valid [[[toml"))

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load() should return an error for malformed TOML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error = %v, want it to mention parsing config", err)
	}
	if cfg.DefaultLevel != level.Warning {
		t.Errorf("DefaultLevel = %v, want default after parse failure", cfg.DefaultLevel)
	}
}

func TestLoad_InvalidLevelInFile(t *testing.T) {
	dir := setupTempDir(t)
	path := filepath.Join(dir, "config.toml")
	writeTestFile(t, path, []byte(`default_level = "loud"`))

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unknown level name")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := setupTempDir(t)
	path := filepath.Join(dir, "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.DefaultLevel = level.Info
	cfg.Session.Addon = "myaddon"
	cfg.ForcedDebug = true
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `default_level = "info"`) {
		t.Errorf("saved config should spell the level by name, got:\n%s", data)
	}
	if strings.Contains(strings.ToLower(string(data)), "forced") {
		t.Errorf("ForcedDebug must not be saved, got:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultLevel != level.Info || loaded.Session.Addon != "myaddon" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.ForcedDebug {
		t.Error("ForcedDebug should not survive a save")
	}
}

// Environment overrides

func TestEnvOverrides(t *testing.T) {
	setupTempDir(t)
	t.Setenv("HOSTLOG_ADDON", "pyRevit")
	t.Setenv("HOSTLOG_STORE", "memory")
	t.Setenv("HOSTLOG_DEFAULT_LEVEL", "critical")
	t.Setenv("HOSTLOG_NO_COLOR", "1")
	t.Setenv("HOSTLOG_FORCED_DEBUG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Session.Addon != "pyRevit" {
		t.Errorf("Session.Addon = %q", cfg.Session.Addon)
	}
	if cfg.Session.Store != StoreMemory {
		t.Errorf("Session.Store = %q", cfg.Session.Store)
	}
	if cfg.DefaultLevel != level.Critical {
		t.Errorf("DefaultLevel = %v", cfg.DefaultLevel)
	}
	if cfg.Format.Color != ColorNever {
		t.Errorf("Format.Color = %q, want never", cfg.Format.Color)
	}
	if !cfg.ForcedDebug {
		t.Error("ForcedDebug should come from HOSTLOG_FORCED_DEBUG")
	}
}

func TestEnvOverrides_InvalidValueReported(t *testing.T) {
	setupTempDir(t)
	t.Setenv("HOSTLOG_FORCED_DEBUG", "sometimes")
	t.Setenv("HOSTLOG_ADDON", "still-applied")

	cfg, err := Load("")
	if err == nil {
		t.Error("expected an error for an unparsable boolean")
	}
	if cfg.Session.Addon != "still-applied" {
		t.Errorf("Session.Addon = %q, valid overrides should still apply", cfg.Session.Addon)
	}
}

// Paths

func TestPaths_EnvOverride(t *testing.T) {
	dir := setupTempDir(t)

	if got := ConfigFile(); got != filepath.Join(dir, "config", "config.toml") {
		t.Errorf("ConfigFile() = %q", got)
	}
	if got := SessionFile(); got != filepath.Join(dir, "state", "session.toml") {
		t.Errorf("SessionFile() = %q", got)
	}
}

func TestPaths_XDGDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOSTLOG_CONFIG_DIR", "")
	t.Setenv("HOSTLOG_STATE_DIR", "")

	oldConfigHome, oldStateHome := xdg.ConfigHome, xdg.StateHome
	xdg.ConfigHome = filepath.Join(dir, "xdg-config")
	xdg.StateHome = filepath.Join(dir, "xdg-state")
	t.Cleanup(func() {
		xdg.ConfigHome = oldConfigHome
		xdg.StateHome = oldStateHome
	})

	if got := ConfigDir(); got != filepath.Join(dir, "xdg-config", "hostlog") {
		t.Errorf("ConfigDir() = %q", got)
	}
	if got := StateDir(); got != filepath.Join(dir, "xdg-state", "hostlog") {
		t.Errorf("StateDir() = %q", got)
	}
}

// Global config

func TestGetAndReload(t *testing.T) {
	dir := setupTempDir(t)
	writeTestFile(t, filepath.Join(dir, "config", "config.toml"), []byte(`output = "file"`))

	if got := Get(); got.Output != OutputFile {
		t.Errorf("Get().Output = %q, want file", got.Output)
	}

	writeTestFile(t, filepath.Join(dir, "config", "config.toml"), []byte(`output = "stdout"`))
	if got := Get(); got.Output != OutputFile {
		t.Error("Get() should return the cached config until Reload")
	}
	if got, err := Reload(); err != nil || got.Output != OutputStdout {
		t.Errorf("Reload() = %q, %v", got.Output, err)
	}
}

func TestOverride(t *testing.T) {
	setupTempDir(t)

	t.Run("inner", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Session.Addon = "overridden"
		Override(t, cfg)
		if Get().Session.Addon != "overridden" {
			t.Error("Override should replace the global config")
		}
	})

	if Get().Session.Addon == "overridden" {
		t.Error("Override should be undone after the subtest")
	}
}

func TestOverride_SkipsEnvOverrides(t *testing.T) {
	setupTempDir(t)
	t.Setenv("HOSTLOG_ADDON", "fromenv")
	t.Setenv("HOSTLOG_DEFAULT_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.Session.Addon = "pyRevit"
	Override(t, cfg)

	got := Get()
	if got.Session.Addon != "pyRevit" || got.DefaultLevel != level.Warning {
		t.Errorf("Get() = addon %q level %v, want the overridden values", got.Session.Addon, got.DefaultLevel)
	}

	if got, _ := Reload(); got.Session.Addon != "fromenv" || got.DefaultLevel != level.Debug {
		t.Errorf("Reload() = addon %q level %v, want env overrides applied", got.Session.Addon, got.DefaultLevel)
	}
}
