package logger_test

import (
	"os"

	"github.com/aswild/yall/logger"
)

// This example shows the default rendering of each level without color.
func ExampleBackend_Log() {
	b := logger.New(logger.Config{Level: logger.DebugLevel, Color: logger.ColorNever, Output: os.Stdout})

	_ = b.Log(logger.Record{Level: logger.InfoLevel, Message: "some normal information"})
	_ = b.Log(logger.Record{Level: logger.WarnLevel, Message: "oh deer"})
	_ = b.Log(logger.Record{Level: logger.DebugLevel, Message: "squash these bugs", File: "src/main.go", Line: 42})
	_ = b.Log(logger.Record{Level: logger.TraceLevel, Message: "loud noises"})
	// Output:
	// some normal information
	// oh deer
	// main.go:42: squash these bugs
}

// This example shows the optional level tags.
func ExampleConfig_includeLevelPrefix() {
	b := logger.New(logger.Config{Color: logger.ColorNever, IncludeLevelPrefix: true, Output: os.Stdout})

	_ = b.Log(logger.Record{Level: logger.ErrorLevel, Message: "gosh heckie"})
	_ = b.Log(logger.Record{Level: logger.InfoLevel, Message: "ready"})
	// Output:
	// [ERROR] gosh heckie
	// ready
}

// This example registers a process-wide backend at startup.
func ExampleInit() {
	logger.Init(logger.Config{Level: logger.LevelFromVerbosity(4)})
	logger.Infof("hello %s", "world")
	logger.Debugf("starting with verbosity %d", 4)
}
