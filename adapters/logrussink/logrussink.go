// Package logrussink forwards logrus entries to a logger.Backend through a hook.
package logrussink

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/aswild/yall/logger"
)

// LevelFromLogrus maps logrus levels; Panic and Fatal render as errors.
func LevelFromLogrus(l logrus.Level) logger.Level {
	switch l {
	case logrus.TraceLevel:
		return logger.TraceLevel
	case logrus.DebugLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}

// Hook is a logrus.Hook that renders entries with a backend.
type Hook struct {
	b *logger.Backend
}

// NewHook returns a hook for b.
func NewHook(b *logger.Backend) *Hook {
	return &Hook{b: b}
}

// Levels returns the logrus levels b renders.
func (h *Hook) Levels() []logrus.Level {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if h.b.Enabled(LevelFromLogrus(l)) {
			levels = append(levels, l)
		}
	}
	return levels
}

// Fire renders one entry. Entry data fields are not rendered.
func (h *Hook) Fire(e *logrus.Entry) error {
	r := logger.Record{
		Level:   LevelFromLogrus(e.Level),
		Message: e.Message,
	}
	if e.HasCaller() {
		r.File = e.Caller.File
		r.Line = uint32(e.Caller.Line)
		r.Target = e.Caller.Function
	}
	return h.b.Log(r)
}

// New returns a logrus.Logger whose only output is b. Its own formatter
// output is discarded and caller reporting is on.
func New(b *logger.Backend) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetReportCaller(true)
	l.SetLevel(toLogrus(b.Level()))
	l.AddHook(NewHook(b))
	return l
}

func toLogrus(l logger.Level) logrus.Level {
	switch {
	case l <= logger.TraceLevel:
		return logrus.TraceLevel
	case l == logger.DebugLevel:
		return logrus.DebugLevel
	case l == logger.InfoLevel:
		return logrus.InfoLevel
	case l == logger.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
