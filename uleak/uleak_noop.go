//go:build !gulib_leakcheck

// Package uleak is a build-tag-gated allocation-site registry. Without
// the gulib_leakcheck build tag, Track/Untrack are no-ops and Report
// always returns an empty slice, so the ambient library code that calls
// them carries zero overhead in normal builds.
package uleak

import "github.com/google/uuid"

// Start is a no-op in builds without the gulib_leakcheck tag.
func Start() {}

// Track is a no-op in builds without the gulib_leakcheck tag.
func Track(uuid.UUID) {}

// Untrack is a no-op in builds without the gulib_leakcheck tag.
func Untrack(uuid.UUID) {}

// Leak describes one allocation still outstanding when Report was called.
type Leak struct {
	Handle   uuid.UUID
	Location string
}

// Report always returns nil in builds without the gulib_leakcheck tag.
func Report() []Leak { return nil }

// Enabled reports whether this build was compiled with the gulib_leakcheck
// tag.
func Enabled() bool { return false }
