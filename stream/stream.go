// Package stream implements gulib's I/O stream abstraction on top of the
// standard library's io.Reader/io.Writer rather than reinventing a vtable:
// Go already has the vtable gulib's C original hand-rolls (read/write
// function pointers plus a context pointer), so every stream in this
// package is a plain io.Reader, io.Writer, or io.Closer, with small
// optional interfaces (Flusher, Resetter, WriteFormatter) standing in for
// the C API's nullable function pointers.
//
// Failures are reported as the three uerr sentinel kinds the rest of
// gulib uses (uerr.Bounds, uerr.Memory, uerr.IO), wrapped with
// uerr.Wrap so callers can errors.Is against the kind. An underlying
// io.EOF/os error, where one exists, appears only in the message text;
// errors.Is does not match it.
package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ivanobilenchi/gulib/uerr"
	"github.com/ivanobilenchi/gulib/vector"
)

// Flusher is implemented by output streams that buffer writes before
// committing them, mirroring the C API's optional `flush` function
// pointer. *bufio.Writer already satisfies this.
type Flusher interface {
	Flush() error
}

// Resetter is implemented by streams that can rewind to their start,
// mirroring the C API's optional `reset` function pointer.
type Resetter interface {
	Reset() error
}

// WriteFormatter is implemented by output streams with a native
// formatted-write path. Streams without one fall back to WriteFormat's
// buffer-and-Write implementation.
type WriteFormatter interface {
	Writef(format string, args ...any) (int, error)
}

// Flush flushes w if it implements Flusher, and is a no-op otherwise.
func Flush(w io.Writer) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// ResetStream resets r if it implements Resetter, and fails with
// uerr.Bounds otherwise, mirroring the C API's "NULL reset function
// pointer" contract.
func ResetStream(r any) error {
	if s, ok := r.(Resetter); ok {
		return s.Reset()
	}
	return uerr.Wrap(uerr.Bounds, "stream: not resettable")
}

// WriteFormat writes a formatted string to w, using w's native Writef if
// it implements WriteFormatter, and a buffer-then-Write fallback
// otherwise.
func WriteFormat(w io.Writer, format string, args ...any) (int, error) {
	if wf, ok := w.(WriteFormatter); ok {
		return wf.Writef(format, args...)
	}
	return fmt.Fprintf(w, format, args...)
}

// NullWriter returns an output stream that discards everything written to
// it, counting bytes as if the write succeeded. It is io.Discard.
func NullWriter() io.Writer { return io.Discard }

// TeeWriter returns an output stream that duplicates every write to each
// of dsts, matching the C API's multi-stream backend. It is
// io.MultiWriter.
func TeeWriter(dsts ...io.Writer) io.Writer { return io.MultiWriter(dsts...) }

// TeeReader returns an input stream that copies everything read from r
// into w as it's read. It is io.TeeReader.
func TeeReader(r io.Reader, w io.Writer) io.Reader { return io.TeeReader(r, w) }

// Buffered wraps w with a bufio.Writer of the given size, so that small
// writes get coalesced before reaching w. Call Flush (or Flush(w)) before
// discarding the returned writer.
func Buffered(w io.Writer, size int) *bufio.Writer {
	return bufio.NewWriterSize(w, size)
}

// BufferedReader wraps r with a bufio.Reader of the given size.
func BufferedReader(r io.Reader, size int) *bufio.Reader {
	return bufio.NewReaderSize(r, size)
}

// Buffer is a growable in-memory output stream backed by a
// vector.Vector[byte]: unlike bytes.Buffer, reads never consume the
// buffer, so the accumulated bytes stay available via Bytes/String for
// the buffer's whole lifetime.
type Buffer struct {
	v vector.Vector[byte]
}

// NewBuffer returns an empty growable buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Write appends p to the buffer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.v.AppendSlice(p); err != nil {
		return 0, uerr.Wrap(uerr.Memory, "stream: buffer grow failed: %v", err)
	}
	return len(p), nil
}

// Writef formats and appends to the buffer.
func (b *Buffer) Writef(format string, args ...any) (int, error) {
	return b.Write([]byte(fmt.Sprintf(format, args...)))
}

// Reset empties the buffer and releases its heap storage.
func (b *Buffer) Reset() error {
	b.v.Deinit()
	return nil
}

// Len returns the number of bytes currently buffered.
func (b *Buffer) Len() int { return b.v.Len() }

// Bytes returns a copy of the buffered bytes.
func (b *Buffer) Bytes() []byte { return b.v.AsSlice() }

// String returns the buffered bytes as a string.
func (b *Buffer) String() string { return string(b.v.AsSlice()) }
