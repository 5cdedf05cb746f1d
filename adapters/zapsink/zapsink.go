// Package zapsink plugs a logger.Backend into go.uber.org/zap as a zapcore.Core.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aswild/yall/logger"
)

// LevelFromZap maps zap levels; DPanic, Panic and Fatal render as errors.
func LevelFromZap(l zapcore.Level) logger.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return logger.DebugLevel
	case l == zapcore.InfoLevel:
		return logger.InfoLevel
	case l == zapcore.WarnLevel:
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}

type core struct {
	b *logger.Backend
}

// NewCore returns a zapcore.Core that writes through b. Fields are dropped.
func NewCore(b *logger.Backend) zapcore.Core {
	return &core{b: b}
}

// New returns a zap.Logger backed by b with caller annotation enabled.
func New(b *logger.Backend, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(b), append([]zap.Option{zap.AddCaller()}, opts...)...)
}

func (c *core) Enabled(l zapcore.Level) bool {
	return c.b.Enabled(LevelFromZap(l))
}

func (c *core) With([]zapcore.Field) zapcore.Core {
	return c
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	r := logger.Record{
		Level:   LevelFromZap(ent.Level),
		Message: ent.Message,
		Target:  ent.LoggerName,
	}
	if ent.Caller.Defined {
		r.File = ent.Caller.File
		r.Line = uint32(ent.Caller.Line)
	}
	return c.b.Log(r)
}

func (c *core) Sync() error {
	return c.b.Flush()
}

var _ zapcore.Core = (*core)(nil)
