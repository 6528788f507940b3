package sessionlog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/joshuadavidthomas/hostlog/internal/format"
	"github.com/joshuadavidthomas/hostlog/internal/level"
	"github.com/joshuadavidthomas/hostlog/internal/logging"
	"github.com/joshuadavidthomas/hostlog/internal/session"
)

const (
	// DefaultAddon qualifies session flag names when Options.Addon is empty.
	DefaultAddon = "hostlog"

	// RootName is the name of the logger at the top of the tree.
	RootName = "root"
)

// Options configures New. Zero values pick the documented defaults.
type Options struct {
	// Addon qualifies the session flag names, e.g. "<addon>_debugISC".
	Addon string
	// Store persists the session flags. Defaults to session.EnvStore.
	Store session.Store
	// ForcedDebug is the host's one-shot request for DEBUG on this run.
	ForcedDebug bool
	// StaticDefault is used when no flag or signal applies. Defaults to WARNING.
	StaticDefault level.Level
	// Outputs defaults to a single console output on stdout.
	Outputs []Output
	// Renderer defaults to format.DefaultDispatcher.
	Renderer Renderer
	// Preprocessor defaults to format.Preprocessor for the running OS.
	Preprocessor Preprocessor
	// Diagnostics receives failures the facility swallows. Defaults to discard.
	Diagnostics *log.Logger
}

// Facility hands out loggers that share one Sink.
type Facility struct {
	addon          string
	store          session.Store
	runtimeDefault level.Level
	sink           *Sink
	diag           *log.Logger

	mu      sync.Mutex
	loggers map[string]*Logger
	root    *Logger
}

// InitialLevel applies the priority order: forced debug, then the debug
// flag, then the verbose flag, then static.
func InitialLevel(flags session.Flags, forcedDebug bool, static level.Level) level.Level {
	switch {
	case forcedDebug, flags.Debug:
		return level.Debug
	case flags.Verbose:
		return level.Info
	default:
		return static
	}
}

// New reads the session flags once and builds the facility's sink at the
// resulting level.
func New(opts Options) (*Facility, error) {
	if opts.StaticDefault == level.NotSet {
		opts.StaticDefault = level.Warning
	}
	if !opts.StaticDefault.Valid() {
		return nil, fmt.Errorf("static default: %w: %d", level.ErrInvalid, int(opts.StaticDefault))
	}
	if opts.Addon == "" {
		opts.Addon = DefaultAddon
	}
	if opts.Store == nil {
		opts.Store = session.EnvStore{}
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = logging.Discard()
	}
	if len(opts.Outputs) == 0 {
		opts.Outputs = []Output{NewConsoleOutput(nil)}
	}
	if opts.Renderer == nil {
		opts.Renderer = format.DefaultDispatcher(nil, format.Styles{})
	}
	if opts.Preprocessor == nil {
		opts.Preprocessor = format.Preprocessor{}
	}

	f := &Facility{
		addon:   opts.Addon,
		store:   opts.Store,
		diag:    opts.Diagnostics,
		loggers: make(map[string]*Logger),
	}
	f.runtimeDefault = InitialLevel(f.Flags(), opts.ForcedDebug, opts.StaticDefault)

	f.sink = &Sink{
		renderer: opts.Renderer,
		pre:      opts.Preprocessor,
		outputs:  append([]Output(nil), opts.Outputs...),
		diag:     opts.Diagnostics,
	}
	f.sink.setThreshold(f.runtimeDefault)

	f.root = &Logger{name: RootName, facility: f, sink: f.sink}
	f.loggers[RootName] = f.root

	f.diag.Debug("session logging initialized",
		"addon", f.addon,
		"level", f.runtimeDefault,
		"forced_debug", opts.ForcedDebug,
	)
	return f, nil
}

// GetLogger returns the logger called name, creating it and any missing
// ancestors on first use. "" and "root" return the root logger.
func (f *Facility) GetLogger(name string) *Logger {
	if name == "" {
		name = RootName
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getLocked(name)
}

func (f *Facility) getLocked(name string) *Logger {
	if l, ok := f.loggers[name]; ok {
		return l
	}
	parent := f.root
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		parent = f.getLocked(name[:i])
	}
	l := &Logger{name: name, parent: parent, facility: f, sink: f.sink}
	f.loggers[name] = l
	return l
}

// Root returns the root logger.
func (f *Facility) Root() *Logger { return f.root }

// Sink returns the shared sink.
func (f *Facility) Sink() *Sink { return f.sink }

func (f *Facility) Addon() string { return f.addon }

// RuntimeDefault is the level computed by New; ResetLevel restores it.
func (f *Facility) RuntimeDefault() level.Level { return f.runtimeDefault }

// Flags reads the persisted session flags. Read failures count as unset.
func (f *Facility) Flags() session.Flags {
	return session.Flags{
		Verbose: f.flag(session.Verbose),
		Debug:   f.flag(session.Debug),
	}
}

// LoggerNames lists every logger created so far, sorted.
func (f *Facility) LoggerNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.loggers))
	for name := range f.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *Facility) flag(flag session.Flag) bool {
	name := session.FlagName(f.addon, flag)
	v, err := session.Get(f.store, name)
	if err != nil {
		f.diag.Debug("reading session flag failed, treating as unset", "flag", name, "err", err)
	}
	return v
}

func (f *Facility) persist(flag session.Flag, value bool) {
	name := session.FlagName(f.addon, flag)
	if err := f.store.Store(name, value); err != nil {
		f.diag.Debug("persisting session flag failed", "flag", name, "value", value, "err", err)
	}
}
