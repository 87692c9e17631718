package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	RegisterLoggingFlags(cmd.Flags())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &stdout, &stderr
}

func TestGetBaseLogger_Defaults(t *testing.T) {
	cmd, stdout, stderr := newCommand(t)

	logger, err := GetBaseLogger(cmd)
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))

	logger.Warn("careful", slog.String("key", "value"))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "msg=careful")
	assert.Contains(t, stderr.String(), "key=value")
}

func TestGetBaseLogger_JSONStdoutDebug(t *testing.T) {
	cmd, stdout, stderr := newCommand(t, "--logformat", "json", "--logoutput", "stdout", "--loglevel", "debug")

	logger, err := GetBaseLogger(cmd)
	require.NoError(t, err)
	logger.Debug("probing", slog.Int("templates", 3))

	assert.Empty(t, stderr.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "probing", entry["msg"])
	assert.EqualValues(t, 3, entry["templates"])
}

func TestLoggerLevelFromCommand(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for flag, want := range tests {
		cmd, _, _ := newCommand(t, "--loglevel", flag)
		got, err := loggerLevelFromCommand(cmd)
		require.NoError(t, err)
		assert.Equal(t, want, got, flag)
	}
}

func TestGetBaseLogger_MissingFlags(t *testing.T) {
	_, err := GetBaseLogger(&cobra.Command{Use: "bare"})
	assert.Error(t, err)
}

func TestRegisterLoggingFlags_RejectsUnknown(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	RegisterLoggingFlags(cmd.Flags())
	assert.Error(t, cmd.ParseFlags([]string{"--loglevel", "trace"}))
}
