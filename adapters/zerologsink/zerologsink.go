// Package zerologsink renders zerolog events with a logger.Backend.
package zerologsink

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/aswild/yall/logger"
)

// LevelFromZerolog maps zerolog levels. NoLevel renders as Info; the
// second result is false for levels that must not be rendered.
func LevelFromZerolog(l zerolog.Level) (logger.Level, bool) {
	switch l {
	case zerolog.TraceLevel:
		return logger.TraceLevel, true
	case zerolog.DebugLevel:
		return logger.DebugLevel, true
	case zerolog.InfoLevel, zerolog.NoLevel:
		return logger.InfoLevel, true
	case zerolog.WarnLevel:
		return logger.WarnLevel, true
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return logger.ErrorLevel, true
	default:
		return logger.OffLevel, false
	}
}

func toZerolog(l logger.Level) zerolog.Level {
	switch {
	case l <= logger.TraceLevel:
		return zerolog.TraceLevel
	case l == logger.DebugLevel:
		return zerolog.DebugLevel
	case l == logger.InfoLevel:
		return zerolog.InfoLevel
	case l == logger.WarnLevel:
		return zerolog.WarnLevel
	case l == logger.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Writer is a zerolog.LevelWriter that decodes each JSON event and
// renders its message and caller fields. Other fields are dropped.
type Writer struct {
	b *logger.Backend
}

// NewWriter returns a Writer for b.
func NewWriter(b *logger.Backend) *Writer {
	return &Writer{b: b}
}

// New returns a zerolog.Logger that writes through b, filtered at b's
// threshold and with caller annotation enabled.
func New(b *logger.Backend) zerolog.Logger {
	return zerolog.New(NewWriter(b)).Level(toZerolog(b.Level())).With().Caller().Logger()
}

// Write handles events from writers that do not pass a level.
func (w *Writer) Write(p []byte) (int, error) {
	lvl := zerolog.NoLevel
	var ev map[string]interface{}
	if err := json.Unmarshal(p, &ev); err == nil {
		if s, ok := ev[zerolog.LevelFieldName].(string); ok {
			if parsed, err := zerolog.ParseLevel(s); err == nil {
				lvl = parsed
			}
		}
	}
	return w.WriteLevel(lvl, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *Writer) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	level, ok := LevelFromZerolog(l)
	if !ok || !w.b.Enabled(level) {
		return len(p), nil
	}

	var ev map[string]interface{}
	if err := json.Unmarshal(p, &ev); err != nil {
		return 0, errors.Wrap(err, "decode zerolog event")
	}
	r := logger.Record{Level: level}
	if msg, ok := ev[zerolog.MessageFieldName]; ok {
		r.Message = fmt.Sprint(msg)
	}
	if caller, ok := ev[zerolog.CallerFieldName].(string); ok {
		r.File, r.Line = logger.SplitLocation(caller)
	}
	if err := w.b.Log(r); err != nil {
		return 0, err
	}
	return len(p), nil
}

var _ zerolog.LevelWriter = (*Writer)(nil)
