// Package ansicolor maps gulib's semantic log-level palette (dim, trace,
// debug, info, success, warn, error, fatal) onto github.com/fatih/color
// attribute sets, mirroring the C library's ucolor.h semantic color
// macros. ulog uses this package to tag its console output.
package ansicolor

import "github.com/fatih/color"

// Semantic colors, one per ucolor.h macro of the same name.
var (
	Dim     = color.New(color.FgHiBlack)
	Trace   = color.New(color.FgBlue)
	Debug   = color.New(color.FgCyan)
	Info    = color.New(color.FgGreen)
	Success = color.New(color.FgGreen)
	Warn    = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Fatal   = color.New(color.FgMagenta)
)

// Enabled reports whether colorized output is currently active.
func Enabled() bool { return !color.NoColor }

// SetEnabled forces colorized output on or off, overriding fatih/color's
// terminal autodetection. Mirrors the library's ULIB_NO_COLOR build-time
// switch as a runtime toggle instead.
func SetEnabled(enabled bool) { color.NoColor = !enabled }

// Sprint renders s in c's color if colorized output is enabled, or
// returns s unmodified otherwise.
func Sprint(c *color.Color, s string) string {
	if !Enabled() {
		return s
	}
	return c.Sprint(s)
}
