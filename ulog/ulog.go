// Package ulog is a thin log/slog façade implementing gulib's seven-level
// taxonomy (Trace, Debug, Perf, Info, Warn, Error, Fatal), colorized via
// ansicolor and mutex-guarded as package-wide state, mirroring the C
// library's single process-wide "main logger" (ulog_main).
//
// Each call locks the package mutex only to read or replace the logger, so
// configuration changes (SetLevel, SetOutput) are not ordered against
// logging calls already in flight on other goroutines.
package ulog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/ivanobilenchi/gulib/ansicolor"
)

// Log levels, interleaved with slog's builtin Debug(-4)/Info(0)/Warn(4)/
// Error(8) to preserve Trace < Debug < Perf < Info < Warn < Error < Fatal.
const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelPerf  = slog.Level(-2)
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
	LevelFatal = slog.Level(12)
)

func levelString(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelPerf:
		return "PERF"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return l.String()
	}
}

func levelColor(l slog.Level) *color.Color {
	switch l {
	case LevelTrace:
		return ansicolor.Trace
	case LevelDebug:
		return ansicolor.Debug
	case LevelPerf:
		return ansicolor.Dim
	case LevelInfo:
		return ansicolor.Info
	case LevelWarn:
		return ansicolor.Warn
	case LevelError:
		return ansicolor.Error
	case LevelFatal:
		return ansicolor.Fatal
	default:
		return ansicolor.Info
	}
}

var (
	mu         sync.Mutex
	level      = LevelInfo
	out        io.Writer = os.Stderr
	logger     *slog.Logger
	exitOnFail = os.Exit
)

func init() {
	logger = slog.New(newHandler(out, level))
}

// SetLevel sets the minimum level the main logger handles. Events below
// level are silently dropped, mirroring ulog_enabled's level <= check.
func SetLevel(l slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	logger = slog.New(newHandler(out, level))
}

// SetOutput redirects the main logger's output, e.g. to a buffer in
// tests or to a file in place of the default stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	logger = slog.New(newHandler(out, level))
}

// Disable stops the main logger from handling any event, equivalent to
// ulog_disable.
func Disable() {
	SetLevel(slog.Level(1<<31 - 1))
}

// Enabled reports whether the main logger currently handles events at
// level l.
func Enabled(l slog.Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return level <= l
}

func log(l slog.Level, msg string, args ...any) {
	mu.Lock()
	lg := logger
	mu.Unlock()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, msg, args...)
	if l == LevelFatal {
		exitOnFail(1)
	}
}

// Trace logs msg at LevelTrace.
func Trace(msg string, args ...any) { log(LevelTrace, msg, args...) }

// Debug logs msg at LevelDebug.
func Debug(msg string, args ...any) { log(LevelDebug, msg, args...) }

// Perf logs msg at LevelPerf, gulib's level for performance/benchmark
// measurements.
func Perf(msg string, args ...any) { log(LevelPerf, msg, args...) }

// Info logs msg at LevelInfo.
func Info(msg string, args ...any) { log(LevelInfo, msg, args...) }

// Warn logs msg at LevelWarn.
func Warn(msg string, args ...any) { log(LevelWarn, msg, args...) }

// Error logs msg at LevelError.
func Error(msg string, args ...any) { log(LevelError, msg, args...) }

// Fatal logs msg at LevelFatal and then terminates the process via
// os.Exit(1): FATAL-level events always abort the process.
func Fatal(msg string, args ...any) { log(LevelFatal, msg, args...) }

// Tracef, Debugf, Perff, Infof, Warnf, Errorf format their arguments with
// fmt.Sprintf before logging, for callers porting printf-style call sites.
func Tracef(format string, args ...any) { log(LevelTrace, fmt.Sprintf(format, args...)) }
func Debugf(format string, args ...any) { log(LevelDebug, fmt.Sprintf(format, args...)) }
func Perff(format string, args ...any)  { log(LevelPerf, fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { log(LevelInfo, fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { log(LevelWarn, fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { log(LevelError, fmt.Sprintf(format, args...)) }

// Fatalf formats its arguments with fmt.Sprintf, logs at LevelFatal, then
// terminates the process via os.Exit(1).
func Fatalf(format string, args ...any) { log(LevelFatal, fmt.Sprintf(format, args...)) }
