package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/joshuadavidthomas/hostlog/internal/level"
)

// Session store kinds.
const (
	StoreFile   = "file"
	StoreEnv    = "env"
	StoreMemory = "memory"
)

// Output kinds.
const (
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type SessionConfig struct {
	Addon string `toml:"addon" json:"addon" yaml:"addon"`
	Store string `toml:"store" json:"store" yaml:"store"`
}

type FormatConfig struct {
	Color              string `toml:"color" json:"color" yaml:"color"`
	PathSeparator      string `toml:"path_separator" json:"path_separator" yaml:"path_separator"`
	Pattern            string `toml:"pattern" json:"pattern" yaml:"pattern"`
	ErrorBackground    string `toml:"error_background" json:"error_background" yaml:"error_background"`
	CriticalBackground string `toml:"critical_background" json:"critical_background" yaml:"critical_background"`
}

type Config struct {
	DefaultLevel level.Level   `toml:"default_level" json:"default_level" yaml:"default_level"`
	Output       string        `toml:"output" json:"output" yaml:"output"`
	Session      SessionConfig `toml:"session" json:"session" yaml:"session"`
	Format       FormatConfig  `toml:"format" json:"format" yaml:"format"`

	// ForcedDebug only comes from the environment; it is the host's
	// per-run signal and is never saved.
	ForcedDebug bool `toml:"-" json:"-" yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		DefaultLevel: level.Warning,
		Output:       OutputStdout,
		Session: SessionConfig{
			Addon: "hostlog",
			Store: StoreFile,
		},
		Format: FormatConfig{
			Color:              ColorAuto,
			Pattern:            "{level}: [{name}] {message}",
			ErrorBackground:    "#EEEEEE",
			CriticalBackground: "#FFDABF",
		},
	}
}

// Validate reports settings no component can act on.
func (c Config) Validate() error {
	var errs []error
	if !c.DefaultLevel.Valid() {
		errs = append(errs, fmt.Errorf("default_level: %w: %d", level.ErrInvalid, int(c.DefaultLevel)))
	}
	switch c.Session.Store {
	case StoreFile, StoreEnv, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("session.store: unknown store %q", c.Session.Store))
	}
	switch c.Output {
	case OutputStdout, OutputFile:
	default:
		errs = append(errs, fmt.Errorf("output: unknown output %q", c.Output))
	}
	switch c.Format.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("format.color: unknown mode %q", c.Format.Color))
	}
	if utf8.RuneCountInString(c.Format.PathSeparator) > 1 {
		errs = append(errs, fmt.Errorf("format.path_separator: want a single character, got %q", c.Format.PathSeparator))
	}
	return errors.Join(errs...)
}

// Separator returns the configured host path separator, or 0 for the
// separator of the running OS.
func (c Config) Separator() rune {
	r, _ := utf8.DecodeRuneInString(c.Format.PathSeparator)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Init loads the config from disk, replacing any cached copy.
func Init() (Config, error) {
	return Reload()
}

func Get() Config {
	configMu.RLock()
	if c := globalConfig; c != nil {
		configMu.RUnlock()
		return *c
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if globalConfig != nil {
		return *globalConfig
	}
	c, _ := Load("")
	globalConfig = &c
	return c
}

func Reload() (Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	c, err := Load("")
	globalConfig = &c
	return c, err
}

func set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	globalConfig = &cfg
}

// Load reads path (ConfigFile when empty). A missing file yields the
// defaults; a malformed one yields the defaults and an error. Environment
// overrides apply in both cases.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFile()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return applyEnvOverrides(cfg)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		cfg, _ = applyEnvOverrides(DefaultConfig())
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return applyEnvOverrides(cfg)
}

func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// envOverrides lists the HOSTLOG_* variables that win over the file.
type envOverrides struct {
	Addon        string      `env:"ADDON"`
	Store        string      `env:"STORE"`
	DefaultLevel level.Level `env:"DEFAULT_LEVEL"`
	NoColor      bool        `env:"NO_COLOR"`
	ForcedDebug  bool        `env:"FORCED_DEBUG"`
}

func applyEnvOverrides(cfg Config) (Config, error) {
	var ov envOverrides
	err := env.ParseWithOptions(&ov, env.Options{Prefix: "HOSTLOG_"})

	if ov.Addon != "" {
		cfg.Session.Addon = ov.Addon
	}
	if ov.Store != "" {
		cfg.Session.Store = ov.Store
	}
	if ov.DefaultLevel != level.NotSet {
		cfg.DefaultLevel = ov.DefaultLevel
	}
	if ov.NoColor {
		cfg.Format.Color = ColorNever
	}
	cfg.ForcedDebug = ov.ForcedDebug

	if err != nil {
		return cfg, fmt.Errorf("reading environment overrides: %w", err)
	}
	return cfg, nil
}
