// Package uerr defines the error-kind taxonomy shared by every gulib
// container: allocation failure, bounded-buffer overrun, and I/O failure.
// Lookup/removal of an absent key and insertion of an already-present key
// are status values, not errors, and are never represented here.
package uerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap one of these with fmt.Errorf("...: %w", Kind) and
// recover it with errors.Is.
var (
	// Memory indicates an allocating operation could not grow its backing
	// storage.
	Memory = errors.New("gulib: memory allocation failed")

	// Bounds indicates a bounded-buffer write ran out of room, or a varint
	// decode ran past its maximum encodable length without terminating.
	Bounds = errors.New("gulib: operation out of bounds")

	// IO indicates a backend (typically file-based) I/O failure.
	IO = errors.New("gulib: I/O failure")
)

// Wrap annotates kind with a message, preserving errors.Is(err, kind).
func Wrap(kind error, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &wrapped{kind: kind, msg: msg}
}

type wrapped struct {
	kind error
	msg  string
}

func (w *wrapped) Error() string { return w.msg + ": " + w.kind.Error() }
func (w *wrapped) Unwrap() error { return w.kind }
