package sessionlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/joshuadavidthomas/hostlog/internal/level"
)

// ErrFileOutputUnimplemented is returned by NewFileOutput.
var ErrFileOutputUnimplemented = errors.New("file output is not implemented")

// Output receives fully rendered lines.
type Output interface {
	WriteLine(line string) error
}

// Renderer turns a pre-processed message into a line. *format.Dispatcher
// implements it.
type Renderer interface {
	Render(l level.Level, name, message string) string
}

// Preprocessor normalizes a raw message. format.Preprocessor implements it.
type Preprocessor interface {
	Process(raw string) string
}

// ConsoleOutput writes each line followed by a newline.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput returns an output writing to w, or to stdout when w is nil.
func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleOutput{w: w}
}

func (o *ConsoleOutput) WriteLine(line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := io.WriteString(o.w, line+"\n")
	return err
}

// NewFileOutput is the extension point for a file destination.
func NewFileOutput(path string) (Output, error) {
	return nil, fmt.Errorf("%s: %w", path, ErrFileOutputUnimplemented)
}

// Sink is the single destination shared by all loggers of a Facility. It
// holds the threshold and the formatting pipeline.
type Sink struct {
	threshold atomic.Int64
	renderer  Renderer
	pre       Preprocessor
	outputs   []Output
	diag      *log.Logger
}

// Threshold returns the current minimum level that is emitted.
func (s *Sink) Threshold() level.Level {
	return level.Level(s.threshold.Load())
}

func (s *Sink) setThreshold(l level.Level) {
	s.threshold.Store(int64(l))
}

func (s *Sink) enabled(l level.Level) bool {
	return l.Enabled(s.Threshold())
}

// emit formats raw for logger name and writes it to every output. It never
// fails: a formatting panic falls back to raw, and write errors or panics
// only reach the diagnostics logger.
func (s *Sink) emit(l level.Level, name, raw string) {
	line := s.format(l, name, raw)
	for _, out := range s.outputs {
		s.write(out, name, line)
	}
}

func (s *Sink) write(out Output, name, line string) {
	defer func() {
		if r := recover(); r != nil {
			s.diag.Debug("writing log line failed", "logger", name, "panic", r)
		}
	}()
	if err := out.WriteLine(line); err != nil {
		s.diag.Debug("writing log line failed", "logger", name, "err", err)
	}
}

func (s *Sink) format(l level.Level, name, raw string) (line string) {
	defer func() {
		if r := recover(); r != nil {
			s.diag.Debug("formatting log line failed, writing it raw", "logger", name, "panic", r)
			line = raw
		}
	}()
	return s.renderer.Render(l, name, s.pre.Process(raw))
}
