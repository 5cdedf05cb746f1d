package logger

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects whether console output is colorized.
type ColorMode int

const (
	// ColorAuto enables color when the output is a terminal, NO_COLOR is
	// unset, and TERM is not "dumb".
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI color output.
	ColorAlways
	// ColorNever disables ANSI color output.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "ColorMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// levelColors is indexed by Level - TraceLevel. Info carries no attributes.
var levelColors = [...][]color.Attribute{
	TraceLevel - TraceLevel: {color.FgBlue},
	DebugLevel - TraceLevel: {color.FgCyan},
	InfoLevel - TraceLevel:  nil,
	WarnLevel - TraceLevel:  {color.Bold, color.FgYellow},
	ErrorLevel - TraceLevel: {color.Bold, color.FgRed},
}

var (
	levelDirectives = func() (d [len(levelColors)]string) {
		for i, attrs := range levelColors {
			d[i] = sgr(attrs...)
		}
		return d
	}()
	resetDirective = sgr(color.Reset)
)

// sgr builds an ANSI "select graphic rendition" escape sequence.
func sgr(attrs ...color.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	codes := make([]string, len(attrs))
	for i, a := range attrs {
		codes[i] = strconv.Itoa(int(a))
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// directiveFor returns the color directive for a level, or "" for none.
func directiveFor(l Level) string {
	i := int(l - TraceLevel)
	if i < 0 || i >= len(levelDirectives) {
		return ""
	}
	return levelDirectives[i]
}

type fdWriter interface {
	Fd() uintptr
}

// enabledFor resolves the mode against a concrete output stream.
func (m ColorMode) enabledFor(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch os.Getenv("TERM") {
	case "dumb":
		return false
	case "":
		if runtime.GOOS != "windows" {
			return false
		}
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
