package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrAlreadyInitialized is returned by TryInit when a backend is already registered.
var ErrAlreadyInitialized = errors.New("logger: a backend is already registered")

// global state
var (
	// registered is the process-wide backend installed by TryInit.
	registered atomic.Pointer[Backend]

	// outStderr receives reports about records that could not be written.
	// Dependency injection point for tests.
	outStderr io.Writer = os.Stderr
)

// TryInit builds a backend from config, registers it as the process-wide
// backend and installs it as the slog default handler. Registration happens
// once; later calls return ErrAlreadyInitialized and change nothing.
func TryInit(config Config) error {
	b := New(config)
	if !registered.CompareAndSwap(nil, b) {
		return ErrAlreadyInitialized
	}
	slog.SetDefault(slog.New(b.Handler()))
	return nil
}

// Init is like TryInit but panics if a backend is already registered.
func Init(config Config) {
	if err := TryInit(config); err != nil {
		panic(errors.Wrap(err, "failed to initialize logger"))
	}
}

// Default returns the registered backend, or nil before Init.
func Default() *Backend {
	return registered.Load()
}

// Enabled reports whether the registered backend renders the level.
// It is false when no backend is registered.
func Enabled(level Level) bool {
	b := registered.Load()
	return b != nil && b.Enabled(level)
}

// callerLocation returns the file, line and package of the caller skip
// frames above callerLocation's own caller.
func callerLocation(skip int) (file string, line uint32, target string) {
	pc, file, ln, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0, ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		target = packageOf(fn.Name())
	}
	return file, uint32(ln), target
}

// packageOf strips the function from a fully qualified name,
// e.g. "github.com/a/b.(*T).M" becomes "github.com/a/b".
func packageOf(name string) string {
	lastSlash := strings.LastIndex(name, "/")
	if dot := strings.Index(name[lastSlash+1:], "."); dot >= 0 {
		return name[:lastSlash+1+dot]
	}
	return name
}

func logf(level Level, format string, v ...any) {
	b := registered.Load()
	if b == nil || !b.Enabled(level) {
		return
	}
	file, line, target := callerLocation(2)
	r := Record{
		Level:   level,
		Message: fmt.Sprintf(format, v...),
		File:    file,
		Line:    line,
		Target:  target,
	}
	if err := b.Log(r); err != nil {
		reportWriteFailure(r, err)
	}
}

// reportWriteFailure tells the user a record was lost. Its own write errors are ignored.
func reportWriteFailure(r Record, err error) {
	fmt.Fprintf(outStderr, "LOGGING ERROR: failed to write log message because of '%v'\n", err)
	fmt.Fprintf(outStderr, "Original message: %s: %s\n", r.Level, r.Message)
}

// Errorf logs an error message formatted with fmt.Sprintf through the registered backend.
func Errorf(format string, v ...any) {
	logf(ErrorLevel, format, v...)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(format string, v ...any) {
	logf(WarnLevel, format, v...)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) {
	logf(InfoLevel, format, v...)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
// The caller's file and line are included.
func Debugf(format string, v ...any) {
	logf(DebugLevel, format, v...)
}

// Tracef logs a trace message formatted with fmt.Sprintf.
// The caller's file and line are included.
func Tracef(format string, v ...any) {
	logf(TraceLevel, format, v...)
}
