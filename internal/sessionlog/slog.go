package sessionlog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joshuadavidthomas/hostlog/internal/level"
)

// LevelCritical is the slog level mapped to CRITICAL.
const LevelCritical = slog.LevelError + 4

// Slog returns a *slog.Logger that writes through l, so libraries logging
// with log/slog follow the session threshold and templates. Attributes are
// appended to the message as key=value pairs.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(&slogHandler{logger: l})
}

type slogHandler struct {
	logger *Logger
	attrs  []slog.Attr
	group  string
}

func (h *slogHandler) Enabled(_ context.Context, sl slog.Level) bool {
	return h.logger.Enabled(fromSlogLevel(sl))
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})

	lvl := fromSlogLevel(r.Level)
	if h.logger.Enabled(lvl) {
		h.logger.sink.emit(lvl, h.logger.name, b.String())
	}
	return nil
}

// WithAttrs returns a copy of the handler with additional base attributes.
func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if h.group != "" {
		nh.group = h.group + "." + name
	} else {
		nh.group = name
	}
	return &nh
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

func fromSlogLevel(sl slog.Level) level.Level {
	switch {
	case sl < slog.LevelInfo:
		return level.Debug
	case sl < slog.LevelWarn:
		return level.Info
	case sl < slog.LevelError:
		return level.Warning
	case sl < LevelCritical:
		return level.Error
	default:
		return level.Critical
	}
}
