// Package utime implements gulib's time subsystem: a fakeable monotonic
// clock, proleptic-Gregorian civil-calendar arithmetic (Howard Hinnant's
// days_from_civil and its inverse), timezone normalization, and the
// interval auto-scale formatting the logger and benchmark binary use.
package utime

import (
	"sync"

	"github.com/benbjohnson/clock"
)

var (
	clockMu      sync.Mutex
	globalClock  clock.Clock = clock.New()
	monotonicRef             = globalClock.Now()
)

// SetClock replaces the package-wide clock, letting tests inject a
// clock.Mock. As with any ambient singleton, callers are responsible for
// serializing access to it themselves.
func SetClock(c clock.Clock) {
	clockMu.Lock()
	defer clockMu.Unlock()
	globalClock = c
	monotonicRef = c.Now()
}

// Monotonic returns nanoseconds elapsed since the clock was last set (or
// since package init), for measuring intervals only: it carries no
// relation to wall-clock time and must never be persisted or compared
// across processes.
func Monotonic() uint64 {
	clockMu.Lock()
	defer clockMu.Unlock()
	return uint64(globalClock.Now().Sub(monotonicRef).Nanoseconds())
}

// Now returns the current wall-clock Unix timestamp in UTC.
func Now() int64 {
	clockMu.Lock()
	defer clockMu.Unlock()
	return globalClock.Now().UTC().Unix()
}

// CivilNow returns the current wall-clock time as a Civil, in UTC.
func CivilNow() Civil { return FromTimestamp(Now()) }
