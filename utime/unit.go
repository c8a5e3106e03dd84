package utime

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Unit is a time unit, ordered from finest (Nanoseconds) to coarsest
// (Years). Diff and Add accept the full range; AutoUnit and the interval
// formatters only ever return Nanoseconds..Days.
type Unit int

const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Months
	Years
)

func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "m"
	case Hours:
		return "h"
	case Days:
		return "d"
	case Months:
		return "mo"
	case Years:
		return "y"
	default:
		return "?"
	}
}

// Nanosecond counts for each sub-day unit, mirroring UTIME_NS_PER_* in
// the C original. The trailing sentinel takes the place of NS_MAX: it
// clamps autoUnitNs's scan at Days without ever indexing out of range.
const (
	nsPerNs = uint64(1)
	nsPerUs = nsPerNs * 1000
	nsPerMs = nsPerUs * 1000
	nsPerS  = nsPerMs * 1000
	nsPerM  = nsPerS * 60
	nsPerH  = nsPerM * 60
	nsPerD  = nsPerH * 24
)

var autoUnitNs = [...]uint64{nsPerNs, nsPerUs, nsPerMs, nsPerS, nsPerM, nsPerH, nsPerD, ^uint64(0)}

// fmtDiv is 2 * 10^FMT_FDIGITS with FMT_FDIGITS == 2, the precision the
// auto-scale scan rounds to before picking the next coarser unit.
const fmtDiv = 200

// AutoUnit picks the coarsest unit in Nanoseconds..Days whose formatted
// magnitude (rounded to two fractional digits) is still >= 1 for the
// interval t, measured in nanoseconds.
func AutoUnit(t uint64) Unit {
	unit := Microseconds
	for int(unit) < len(autoUnitNs)-1 && t > autoUnitNs[unit]-autoUnitNs[unit-1]/fmtDiv-1 {
		unit++
	}
	return unit - 1
}

// Convert expresses the interval t (in nanoseconds) in unit, clamped to
// Nanoseconds..Days.
func Convert(t uint64, unit Unit) float64 {
	if unit < Nanoseconds {
		unit = Nanoseconds
	} else if unit > Days {
		unit = Days
	}
	return float64(t) / float64(autoUnitNs[unit])
}

// IntervalString formats the interval t (in nanoseconds) using its
// auto-picked unit, e.g. "999.00 ns" or "1.00 ms".
func IntervalString(t uint64) string {
	unit := AutoUnit(t)
	return FormatInterval(t, unit)
}

// FormatInterval formats the interval t (in nanoseconds) in the given
// unit, e.g. FormatInterval(1500, Microseconds) == "1.50 us".
func FormatInterval(t uint64, unit Unit) string {
	return fmt.Sprintf("%.2f %s", Convert(t, unit), unit)
}

// RawNanosString renders t's exact nanosecond count with thousands
// separators (e.g. "86,382,000,000,000 ns"), for benchmark/log output
// that wants the unscaled figure alongside IntervalString's scaled one.
func RawNanosString(t uint64) string {
	return humanize.Comma(int64(t)) + " ns"
}
