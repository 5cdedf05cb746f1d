package logger

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record is one logging event handed to the backend by a facade.
// It is only borrowed for the duration of a single Log call.
type Record struct {
	Level   Level
	Message string
	// File and Line locate the call site. Only Debug and Trace show them.
	File string
	Line uint32
	// Target names the module or logger that produced the record.
	Target string
}

// RenderOptions controls how a record is turned into a line of text.
type RenderOptions struct {
	// Color wraps the line in the level's ANSI color and a reset.
	Color bool
	// FullFilename keeps the file path as given instead of its last element.
	FullFilename bool
	// IncludeLevelPrefix adds a [LEVEL] tag to every level except Info.
	// Debug and Trace lines then read "[DEBUG][file:line] msg".
	IncludeLevelPrefix bool
}

// WriteError reports that the output stream rejected a rendered line.
type WriteError struct {
	Level Level
	Err   error
}

func (e *WriteError) Error() string {
	return "write " + e.Level.String() + " record: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// Render formats r and hands it to w in a single Write call.
// Level filtering is the caller's job.
func Render(w io.Writer, r Record, opts RenderOptions) error {
	return writeLine(w, r.Level, appendRecord(nil, r, opts))
}

func appendRecord(dst []byte, r Record, opts RenderOptions) []byte {
	msg := strings.TrimRight(r.Message, "\r\n")
	if dst == nil {
		dst = make([]byte, 0, len(msg)+64)
	}

	directive := ""
	if opts.Color {
		directive = directiveFor(r.Level)
	}
	dst = append(dst, directive...)

	tagged := opts.IncludeLevelPrefix && r.Level != InfoLevel
	if tagged {
		dst = append(dst, '[')
		dst = append(dst, r.Level.String()...)
		dst = append(dst, ']')
	}
	switch {
	case r.Level.showsLocation() && tagged:
		dst = append(dst, '[')
		dst = appendLocation(dst, r, opts.FullFilename)
		dst = append(dst, "] "...)
	case r.Level.showsLocation():
		dst = appendLocation(dst, r, opts.FullFilename)
		dst = append(dst, ": "...)
	case tagged:
		dst = append(dst, ' ')
	}
	dst = append(dst, msg...)

	if directive != "" {
		dst = append(dst, resetDirective...)
	}
	return append(dst, '\n')
}

func appendLocation(dst []byte, r Record, full bool) []byte {
	dst = append(dst, displayFile(r.File, full)...)
	dst = append(dst, ':')
	return strconv.AppendUint(dst, uint64(r.Line), 10)
}

// displayFile keeps only the last path element unless full is set.
func displayFile(file string, full bool) string {
	if file == "" {
		return "?"
	}
	if full {
		return file
	}
	if i := strings.LastIndexAny(file, `/\`); i >= 0 && i+1 < len(file) {
		return file[i+1:]
	}
	return file
}

func writeLine(w io.Writer, level Level, line []byte) error {
	n, err := w.Write(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Level: level, Err: errors.WithStack(err)}
	}
	return nil
}

// SplitLocation parses a "file:line" caller string as produced by zap,
// zerolog and go-kit. A missing or malformed line yields 0.
func SplitLocation(s string) (file string, line uint32) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return s, 0
	}
	n, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		return s, 0
	}
	return s[:i], uint32(n)
}
