// Package urand provides gulib's random integer and string generators: a
// package-wide seedable source plus helpers for ranged integers and
// random strings over an arbitrary character set.
//
// The generator is process-wide state behind one mutex: each call is
// atomic, but a sequence of calls (SetSeed followed by draws) is not, so
// seeded output is reproducible only while no other goroutine draws from
// it concurrently.
package urand

import (
	"math/rand/v2"
	"sync"
)

// DefaultCharset is the alphanumeric charset random strings are drawn
// from when the caller doesn't supply one of their own.
const DefaultCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

var (
	mu  sync.Mutex
	src = rand.New(rand.NewPCG(0, 0))
)

// SetSeed reseeds the package-wide generator, making subsequent output
// deterministic and reproducible across runs for the same seed.
func SetSeed(seed uint64) {
	mu.Lock()
	defer mu.Unlock()
	src = rand.New(rand.NewPCG(seed, seed))
}

// Int returns a random non-negative integer.
func Int() int64 {
	mu.Lock()
	defer mu.Unlock()
	return src.Int64()
}

// Range returns a random integer in [start, start+length).
func Range(start int64, length uint64) int64 {
	if length == 0 {
		return start
	}
	mu.Lock()
	defer mu.Unlock()
	return start + int64(src.Uint64N(length))
}

// String returns a random string of the given length drawn from charset,
// or DefaultCharset if charset is empty.
func String(length uint, charset string) string {
	if length == 0 {
		return ""
	}
	if charset == "" {
		charset = DefaultCharset
	}

	mu.Lock()
	defer mu.Unlock()

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = charset[src.Uint64N(uint64(len(charset)))]
	}
	return string(buf)
}
