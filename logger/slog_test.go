package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromSlog(t *testing.T) {
	cases := map[slog.Level]Level{
		SlogLevelTrace:      TraceLevel,
		slog.LevelDebug - 1: TraceLevel,
		slog.LevelDebug:     DebugLevel,
		slog.LevelInfo:      InfoLevel,
		slog.LevelInfo + 2:  InfoLevel,
		slog.LevelWarn:      WarnLevel,
		slog.LevelError:     ErrorLevel,
		slog.LevelError + 4: ErrorLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, LevelFromSlog(in), in.String())
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Level: WarnLevel, Output: &buf}).Handler()

	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestSlogHandler_RendersThroughBackend(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(New(Config{Level: TraceLevel, Color: ColorAlways, Output: &buf}).Handler())

	l.Error("boom", "attr", "ignored")
	assert.Equal(t, red+"boom"+reset+"\n", buf.String())

	buf.Reset()
	l.Log(context.Background(), SlogLevelTrace, "trace me")
	assert.Contains(t, buf.String(), blue)
	assert.Contains(t, buf.String(), "slog_test.go:")
	assert.Contains(t, buf.String(), ": trace me")
}

func TestSlogHandler_GroupsBecomeTarget(t *testing.T) {
	b := New(Config{Output: &bytes.Buffer{}})
	h := b.Handler().WithGroup("db").WithAttrs([]slog.Attr{slog.Int("n", 1)}).WithGroup("pool")

	sh, ok := h.(*slogHandler)
	require.True(t, ok)
	assert.Equal(t, "db.pool", sh.target)
	assert.Same(t, h, h.WithGroup(""))
}

func TestSlogHandler_NoSourceRendersPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	h := New(Config{Level: DebugLevel, Output: &buf}).Handler()

	r := slog.Record{Level: slog.LevelDebug, Message: "no pc"}
	require.NoError(t, h.Handle(context.Background(), r))
	assert.Equal(t, "?:0: no pc\n", buf.String())
}
