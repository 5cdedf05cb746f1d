// Package kitsink exposes a logger.Backend as a go-kit log.Logger.
//
// The "level", "msg" and "caller" keys drive rendering. Any other pairs are
// dropped.
package kitsink

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/aswild/yall/logger"
)

const (
	msgKey    = "msg"
	callerKey = "caller"
)

type kitLogger struct {
	b *logger.Backend
}

// New returns a go-kit logger that renders through b.
func New(b *logger.Backend) log.Logger {
	return &kitLogger{b: b}
}

// NewWithCaller is New with log.DefaultCaller bound to the "caller" key.
func NewWithCaller(b *logger.Backend) log.Logger {
	return log.With(New(b), callerKey, log.DefaultCaller)
}

// LevelFromName maps go-kit level values; unknown names are Info.
func LevelFromName(name string) logger.Level {
	switch strings.ToLower(name) {
	case "debug":
		return logger.DebugLevel
	case "warn", "warning":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (k *kitLogger) Log(keyvals ...interface{}) error {
	r := logger.Record{Level: logger.InfoLevel}
	for i := 0; i+1 < len(keyvals); i += 2 {
		v := keyvals[i+1]
		switch fmt.Sprint(keyvals[i]) {
		case fmt.Sprint(level.Key()):
			r.Level = LevelFromName(fmt.Sprint(v))
		case msgKey:
			r.Message = fmt.Sprint(v)
		case callerKey:
			r.File, r.Line = logger.SplitLocation(fmt.Sprint(v))
		}
	}
	return k.b.Log(r)
}
