package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// SlogLevelTrace is the slog level that maps to TraceLevel.
const SlogLevelTrace = slog.Level(-8)

// LevelFromSlog maps a slog level onto the nearest Level at or below it.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l < slog.LevelDebug:
		return TraceLevel
	case l < slog.LevelInfo:
		return DebugLevel
	case l < slog.LevelWarn:
		return InfoLevel
	case l < slog.LevelError:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

// Handler returns a slog.Handler that logs through b. Attributes are
// accepted but not rendered; a group name becomes the record's Target.
func (b *Backend) Handler() slog.Handler {
	return &slogHandler{b: b}
}

type slogHandler struct {
	b      *Backend
	target string
}

func (h *slogHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.b.Enabled(LevelFromSlog(l))
}

func (h *slogHandler) Handle(_ context.Context, sr slog.Record) error {
	r := Record{
		Level:   LevelFromSlog(sr.Level),
		Message: sr.Message,
		Target:  h.target,
	}
	if sr.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{sr.PC}).Next()
		r.File = f.File
		r.Line = uint32(f.Line)
	}
	return h.b.Log(r)
}

func (h *slogHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	target := name
	if h.target != "" {
		target = h.target + "." + name
	}
	return &slogHandler{b: h.b, target: target}
}
