//go:build gulib_leakcheck

// Package uleak is a build-tag-gated allocation-site registry: when built
// with the gulib_leakcheck tag, vector, hashtable, and ustring call
// Track/Untrack around their allocating operations, and Report surfaces
// anything still outstanding at the end of a test run.
package uleak

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

type entry struct {
	location string
}

var (
	mu      sync.RWMutex
	active  bool
	entries = map[uuid.UUID]entry{}
)

// Start begins leak detection, clearing any previously tracked entries.
func Start() {
	mu.Lock()
	defer mu.Unlock()
	active = true
	entries = map[uuid.UUID]entry{}
}

// Track registers a new allocation, identified by handle, recording the
// call site of Track's caller (i.e. the allocating library function, not
// Track itself).
func Track(handle uuid.UUID) {
	mu.Lock()
	defer mu.Unlock()
	if !active {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	loc := "unknown"
	if ok {
		loc = fmt.Sprintf("%s:%d", file, line)
	}
	entries[handle] = entry{location: loc}
}

// Untrack removes handle from the registry, e.g. when its owning value is
// freed or goes out of scope.
func Untrack(handle uuid.UUID) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, handle)
}

// Leak describes one allocation still outstanding when Report was called.
type Leak struct {
	Handle   uuid.UUID
	Location string
}

// Report ends leak detection and returns every allocation still
// outstanding, in no particular order. An empty result means no leaks.
func Report() []Leak {
	mu.Lock()
	defer mu.Unlock()
	active = false

	leaks := make([]Leak, 0, len(entries))
	for h, e := range entries {
		leaks = append(leaks, Leak{Handle: h, Location: e.location})
	}
	entries = map[uuid.UUID]entry{}
	return leaks
}

// Enabled reports whether this build was compiled with the gulib_leakcheck
// tag, i.e. whether Track/Untrack/Report do anything at all.
func Enabled() bool { return true }
