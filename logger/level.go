package logger

import "fmt"

// Level defines log severity. Higher values are more severe.
type Level int

const (
	// TraceLevel is the most verbose level.
	TraceLevel Level = iota - 2
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging. It is the zero value.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// OffLevel is only meaningful as a threshold: it disables all output.
	OffLevel
)

// AllLevels returns every record severity, most severe first.
func AllLevels() []Level {
	return []Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}
}

func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ShouldLog reports whether a record of the given severity passes the
// threshold. The comparison is inclusive.
func ShouldLog(threshold, severity Level) bool {
	return severity >= threshold
}

const maxVerbosity = uint8(OffLevel - TraceLevel)

// LevelFromVerbosity translates a verbosity number into a threshold:
// 0 = Off, 1 = Error, 2 = Warn, 3 = Info, 4 = Debug, 5+ = Trace.
func LevelFromVerbosity(v uint8) Level {
	if v > maxVerbosity {
		v = maxVerbosity
	}
	return OffLevel - Level(v)
}

// Verbosity is the inverse of LevelFromVerbosity.
func (l Level) Verbosity() uint8 {
	switch {
	case l >= OffLevel:
		return 0
	case l <= TraceLevel:
		return maxVerbosity
	}
	return uint8(OffLevel - l)
}

// Louder lowers the threshold by n steps, saturating at TraceLevel.
// Useful for translating a count of -v flags.
func (l Level) Louder(n uint8) Level {
	v := l.Verbosity()
	if n > maxVerbosity-v {
		return TraceLevel
	}
	return LevelFromVerbosity(v + n)
}

// Quieter raises the threshold by n steps, saturating at OffLevel.
func (l Level) Quieter(n uint8) Level {
	v := l.Verbosity()
	if n > v {
		return OffLevel
	}
	return LevelFromVerbosity(v - n)
}

// showsLocation reports whether records at this level carry a file:line prefix.
func (l Level) showsLocation() bool {
	return l < InfoLevel
}
