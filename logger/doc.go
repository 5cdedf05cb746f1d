// Package logger is a small leveled log backend that renders records to
// stderr with standard terminal colors.
//
// # Console Output
//
//   - Info lines are the bare message: no color, no prefix.
//   - Error and Warn lines are bold red and bold yellow.
//   - Debug and Trace lines are cyan and blue and start with "file:line: ".
//   - Every colored line ends with a reset, so color never leaks past a line.
//
// Color is detected automatically (terminal, NO_COLOR, TERM=dumb) and can
// be forced with Config.Color.
//
// # Usage
//
// Register once at startup, then log through the package functions or
// through log/slog, which Init points at the same backend:
//
//	logger.Init(logger.Config{Level: logger.DebugLevel})
//	logger.Infof("server started on port %d", 8080)
//	slog.Debug("cache warmed")
//
// A Backend is an ordinary value and can be built without registering it,
// for example to capture output in tests:
//
//	var buf bytes.Buffer
//	b := logger.New(logger.Config{Output: &buf})
//	_ = b.Log(logger.Record{Level: logger.InfoLevel, Message: "hello"})
//
// Adapters for zap, logrus, go-kit and zerolog live under adapters/.
//
// # Level Filtering
//
// A single threshold is configured in code via Config.Level. Records at or
// above it are written; the rest are dropped silently. There is no
// environment variable or file based configuration.
package logger
