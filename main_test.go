package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aswild/yall/logger"
)

func TestOptionsConfig_Defaults(t *testing.T) {
	cfg, err := (&options{color: "auto"}).config(false)
	require.NoError(t, err)
	assert.Equal(t, logger.InfoLevel, cfg.Level)
	assert.Equal(t, logger.ColorAuto, cfg.Color)
	assert.False(t, cfg.FullFilename)
}

func TestOptionsConfig_VerboseQuiet(t *testing.T) {
	cfg, err := (&options{verbose: 2, color: "never"}).config(false)
	require.NoError(t, err)
	assert.Equal(t, logger.TraceLevel, cfg.Level)
	assert.Equal(t, logger.ColorNever, cfg.Color)

	cfg, err = (&options{quiet: 9, color: "always"}).config(false)
	require.NoError(t, err)
	assert.Equal(t, logger.OffLevel, cfg.Level)
	assert.Equal(t, logger.ColorAlways, cfg.Color)
}

func TestOptionsConfig_ExplicitLevel(t *testing.T) {
	cfg, err := (&options{level: 4, verbose: 1, fullFilename: true, color: "auto"}).config(true)
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.Level)
	assert.True(t, cfg.FullFilename)

	cfg, err = (&options{level: 1000, color: "auto"}).config(true)
	require.NoError(t, err)
	assert.Equal(t, logger.TraceLevel, cfg.Level)

	_, err = (&options{level: -1, color: "auto"}).config(true)
	assert.Error(t, err)
}

func TestOptionsConfig_InvalidColor(t *testing.T) {
	_, err := (&options{color: "sometimes"}).config(false)
	assert.ErrorContains(t, err, `invalid color mode "sometimes"`)
}

func TestRootCmd_FlagsMutuallyExclusive(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-v", "-l", "2"})
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})
	assert.Error(t, cmd.Execute())
}

func TestPerftestCmd_RejectsBadCount(t *testing.T) {
	cmd := newPerftestCmd()
	cmd.SetArgs([]string{"lots"})
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})
	assert.ErrorContains(t, cmd.Execute(), `invalid count "lots"`)
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
