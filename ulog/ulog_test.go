package ulog_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/ivanobilenchi/gulib/ansicolor"
	"github.com/ivanobilenchi/gulib/ulog"
	"github.com/stretchr/testify/require"
)

func withCapture(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevEnabled := ansicolor.Enabled()
	ansicolor.SetEnabled(false)

	var buf bytes.Buffer
	ulog.SetOutput(&buf)
	ulog.SetLevel(ulog.LevelTrace)

	t.Cleanup(func() {
		ansicolor.SetEnabled(prevEnabled)
		ulog.SetOutput(os.Stderr)
		ulog.SetLevel(ulog.LevelInfo)
	})
	return &buf
}

func TestInfoWritesMessageAndAttrs(t *testing.T) {
	buf := withCapture(t)
	ulog.Info("hello", "key", "val")
	require.Contains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "key=val")
}

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	buf := withCapture(t)
	ulog.SetLevel(ulog.LevelWarn)
	ulog.Debug("should not appear")
	ulog.Warn("should appear")
	require.NotContains(t, buf.String(), "should not appear")
	require.Contains(t, buf.String(), "should appear")
}

func TestEnabledReflectsLevel(t *testing.T) {
	withCapture(t)
	ulog.SetLevel(ulog.LevelInfo)
	require.False(t, ulog.Enabled(ulog.LevelDebug))
	require.True(t, ulog.Enabled(ulog.LevelInfo))
	require.True(t, ulog.Enabled(ulog.LevelError))
}

func TestDisableSilencesAllLevels(t *testing.T) {
	buf := withCapture(t)
	ulog.Disable()
	ulog.Error("should not appear")
	require.Empty(t, buf.String())
}

func TestFatalInvokesExitFunc(t *testing.T) {
	buf := withCapture(t)
	var exitCode = -1
	restore := ulog.SetExitFunc(func(code int) { exitCode = code })
	defer restore()

	ulog.Fatal("boom")
	require.Equal(t, 1, exitCode)
	require.Contains(t, buf.String(), "FATAL")
	require.Contains(t, buf.String(), "boom")
}

func TestFormattedVariantsFormatArgs(t *testing.T) {
	buf := withCapture(t)
	ulog.Infof("count=%d", 42)
	require.Contains(t, buf.String(), "count=42")
}

func TestLevelOrdering(t *testing.T) {
	require.Less(t, int(ulog.LevelTrace), int(ulog.LevelDebug))
	require.Less(t, int(ulog.LevelDebug), int(ulog.LevelPerf))
	require.Less(t, int(ulog.LevelPerf), int(ulog.LevelInfo))
	require.Less(t, int(ulog.LevelInfo), int(ulog.LevelWarn))
	require.Less(t, int(ulog.LevelWarn), int(ulog.LevelError))
	require.Less(t, int(ulog.LevelError), int(ulog.LevelFatal))
	require.Equal(t, slog.LevelDebug, ulog.LevelDebug)
	require.Equal(t, slog.LevelInfo, ulog.LevelInfo)
	require.Equal(t, slog.LevelWarn, ulog.LevelWarn)
	require.Equal(t, slog.LevelError, ulog.LevelError)
}
