package logger

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
)

// Config defines options for New. It is copied at construction; changing
// it afterwards has no effect on an existing Backend.
type Config struct {
	// Level is the minimum severity rendered.
	// Default: InfoLevel (the zero value)
	Level Level
	// Color selects colorized output.
	// Default: ColorAuto
	Color ColorMode
	// FullFilename shows the record's file path unshortened on Debug and Trace lines.
	// Default: false (only the last path element)
	FullFilename bool
	// IncludeLevelPrefix adds the [LEVEL] tag to non-Info lines; Debug and
	// Trace read "[DEBUG][file:line] msg".
	// Default: false
	IncludeLevelPrefix bool
	// Output receives rendered lines.
	// Default: nil (stderr)
	Output io.Writer
}

// DefaultConfig returns the configuration used by the zero Config:
// Info threshold, automatic color, stderr.
func DefaultConfig() Config {
	return Config{Level: InfoLevel, Color: ColorAuto}
}

// Backend renders records at or above its threshold to one output stream.
// It is safe for concurrent use; each record is written with a single
// Write call while holding the backend's lock.
type Backend struct {
	level Level
	opts  RenderOptions

	mu  sync.Mutex
	out io.Writer
}

// New returns a backend for cfg. It never fails.
func New(cfg Config) *Backend {
	out := cfg.Output
	useColor := false
	if out == nil {
		useColor = cfg.Color.enabledFor(os.Stderr)
		out = colorable.NewColorable(os.Stderr)
	} else {
		useColor = cfg.Color.enabledFor(out)
	}
	return &Backend{
		level: cfg.Level,
		opts: RenderOptions{
			Color:              useColor,
			FullFilename:       cfg.FullFilename,
			IncludeLevelPrefix: cfg.IncludeLevelPrefix,
		},
		out: out,
	}
}

// Level returns the configured threshold.
func (b *Backend) Level() Level {
	return b.level
}

// Colorized reports whether the backend emits ANSI color directives.
func (b *Backend) Colorized() bool {
	return b.opts.Color
}

// Enabled reports whether records of the given severity are rendered.
// Facades call it before building expensive messages.
func (b *Backend) Enabled(level Level) bool {
	return ShouldLog(b.level, level)
}

// Log renders r if its level is enabled. Discarded records return nil.
// A failed write is returned as a *WriteError; Log never retries.
func (b *Backend) Log(r Record) error {
	if !b.Enabled(r.Level) {
		return nil
	}
	line := appendRecord(nil, r, b.opts)

	b.mu.Lock()
	defer b.mu.Unlock()
	return writeLine(b.out, r.Level, line)
}

// Flush flushes the output stream if it supports it.
func (b *Backend) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch out := b.out.(type) {
	case interface{ Sync() error }:
		return errors.Wrap(out.Sync(), "sync log output")
	case interface{ Flush() error }:
		return errors.Wrap(out.Flush(), "flush log output")
	}
	return nil
}
