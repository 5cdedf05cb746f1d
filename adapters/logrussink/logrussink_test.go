package logrussink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aswild/yall/logger"
)

func TestLogrus_RendersThroughBackend(t *testing.T) {
	var buf bytes.Buffer
	b := logger.New(logger.Config{Level: logger.TraceLevel, Color: logger.ColorNever, Output: &buf})
	l := New(b)

	l.WithField("ignored", true).Info("hello")
	l.Trace("loud noises")
	l.Error("gosh heckie")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "hello", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "logrussink_test.go:"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ": loud noises"), lines[1])
	assert.Equal(t, "gosh heckie", lines[2])
}

func TestLogrus_HonoursThreshold(t *testing.T) {
	var buf bytes.Buffer
	b := logger.New(logger.Config{Level: logger.WarnLevel, Output: &buf})
	l := New(b)

	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	l.Info("dropped")
	l.Debug("dropped")
	l.Warn("kept")
	assert.Equal(t, "kept\n", buf.String())
}

func TestHook_Levels(t *testing.T) {
	b := logger.New(logger.Config{Level: logger.WarnLevel, Output: &bytes.Buffer{}})
	assert.Equal(t,
		[]logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel},
		NewHook(b).Levels())

	off := logger.New(logger.Config{Level: logger.OffLevel, Output: &bytes.Buffer{}})
	assert.Empty(t, NewHook(off).Levels())
}
