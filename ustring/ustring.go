// Package ustring implements gulib's immutable, small-size-optimized
// string: short strings live inline in the value itself, longer ones
// reference a Go string's (already immutable, already GC-managed) backing
// array. Go's garbage collector reclaims both branches, so the only
// ownership distinction the constructors preserve is copy-vs-share of the
// input bytes; Release is an optional hook (like vector/hashtable's
// Deinit) for keeping a gulib_leakcheck build's outstanding-allocation
// report accurate for heap-backed values.
package ustring

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/google/uuid"
	"github.com/ivanobilenchi/gulib/uleak"
)

// ssoCap is the number of bytes a String can hold inline before it spills
// to a heap-backed Go string. Chosen to keep sizeof(String) at a single
// cache line's worth of struct (22 bytes of inline storage plus the flag
// and the heap string header), mirroring the intent (not the literal
// union layout) of the C union-based small-string optimization.
const ssoCap = 22

// heapFlag marks a String as heap-backed; values in [0, ssoCap] mark it as
// inline with that many live bytes. This plays the role the C
// implementation's last-byte discriminator plays, without relying on an
// unsafe union of a pointer and a byte array, which Go's garbage collector
// cannot see through safely.
const heapFlag = 0xFF

// String is gulib's string value type. The zero value is the empty
// string. Values are safe to copy and compare with ==... except that ==
// is NOT a valid equality test for String (see Equals): two heap-backed
// strings with the same bytes carry different leak-tracking handles and
// would compare unequal under ==.
type String struct {
	inline [ssoCap]byte
	flag   uint8
	heap   string
	handle uuid.UUID
}

// Null is the string with no backing buffer at all, as opposed to Empty,
// which has a (zero-length) buffer. Most code should prefer the zero
// value (equivalent to Empty) and use IsEmpty; Null exists for parity with
// APIs that distinguish "no value" from "empty value".
var Null = String{flag: heapFlag}

// Empty is the empty string. It is the zero value of String.
var Empty = String{}

func inlineOf(buf []byte) String {
	var s String
	s.flag = uint8(len(buf))
	copy(s.inline[:], buf)
	return s
}

// newHeap builds a heap-backed String and registers it with the leak
// detector, a no-op unless the binary was built with the gulib_leakcheck
// tag.
func newHeap(heap string) String {
	s := String{flag: heapFlag, heap: heap, handle: uuid.New()}
	uleak.Track(s.handle)
	return s
}

// Release untracks s's heap allocation from the leak detector. It frees
// nothing (Go's garbage collector already owns the storage); call it when
// a heap-backed String's last reference goes out of scope, mirroring
// vector/hashtable's Deinit. A no-op for inline or already-released
// strings.
func (s *String) Release() {
	if s.flag == heapFlag && s.handle != uuid.Nil {
		uleak.Untrack(s.handle)
		s.handle = uuid.Nil
	}
}

// Copy returns a String holding a private copy of buf's bytes.
func Copy(buf []byte) String {
	if buf == nil {
		return Null
	}
	if len(buf) <= ssoCap {
		return inlineOf(buf)
	}
	return newHeap(string(buf))
}

// FromString returns a String holding a private copy of s's bytes. Since
// Go strings are themselves immutable, this never needs to copy for the
// heap branch; WrapString is an alias kept for readers coming from the
// copy/wrap-pair naming used elsewhere in gulib.
func FromString(s string) String {
	if len(s) <= ssoCap {
		return inlineOf([]byte(s))
	}
	return newHeap(s)
}

// WrapString is FromString: wrapping a Go string is always zero-copy and
// always safe, because Go strings are immutable.
func WrapString(s string) String { return FromString(s) }

// Wrap returns a String that references buf's backing array directly
// without copying, for buffers too large to live inline. The caller must
// not mutate buf afterwards. Buffers that fit inline are always copied,
// since there is nothing to share a reference to once they're inlined.
func Wrap(buf []byte) String {
	if buf == nil {
		return Null
	}
	if len(buf) <= ssoCap {
		return inlineOf(buf)
	}
	return newHeap(unsafe.String(&buf[0], len(buf)))
}

// Assign is the Go realization of the C API's ownership-transferring
// constructor. Since Go's garbage collector, not the caller, owns the
// underlying storage, "taking ownership" of buf degenerates to the same
// zero-copy path as Wrap: the caller must simply stop using buf
// afterwards.
func Assign(buf []byte) String { return Wrap(buf) }

// Dup returns an independent copy of s. Because String is already an
// immutable value type, this is just a value copy; it exists for API
// parity with the C original, where duplicating a large string meant a
// real buffer copy.
func (s String) Dup() String { return s }

// WithFormat formats according to format and args, as fmt.Sprintf, and
// returns the result as a String.
func WithFormat(format string, args ...any) String {
	return FromString(fmt.Sprintf(format, args...))
}

// Concat concatenates strings in order.
func Concat(strings ...String) String {
	return Join(Empty, strings...)
}

// Join joins strings with sep in between.
func Join(sep String, strings ...String) String {
	if len(strings) == 0 {
		return Empty
	}
	var b builder
	b.writeString(strings[0])
	for _, s := range strings[1:] {
		b.writeString(sep)
		b.writeString(s)
	}
	return b.build()
}

// Repeating returns s repeated times times.
func Repeating(s String, times int) String {
	if times <= 0 || s.Length() == 0 {
		return Empty
	}
	var b strings.Builder
	b.Grow(s.Length() * times)
	for i := 0; i < times; i++ {
		b.WriteString(s.Data())
	}
	return FromString(b.String())
}

type builder struct {
	b strings.Builder
}

func (w *builder) writeString(s String) { w.b.WriteString(s.Data()) }
func (w *builder) build() String        { return FromString(w.b.String()) }

// Length returns the number of bytes in the string.
func (s String) Length() int {
	if s.flag == heapFlag {
		return len(s.heap)
	}
	return int(s.flag)
}

// Data returns the string's contents as a native Go string.
func (s String) Data() string {
	if s.flag == heapFlag {
		return s.heap
	}
	return string(s.inline[:s.flag])
}

// IsNull reports whether s has no backing buffer at all.
func (s String) IsNull() bool { return s.flag == heapFlag && s.heap == "" }

// IsEmpty reports whether s has zero length. The null string is
// considered empty.
func (s String) IsEmpty() bool { return s.Length() == 0 }

// IndexOf returns the index of the first occurrence of needle, or a value
// >= Length() if it cannot be found.
func (s String) IndexOf(needle byte) int {
	i := strings.IndexByte(s.Data(), needle)
	if i < 0 {
		return s.Length()
	}
	return i
}

// IndexOfLast returns the index of the last occurrence of needle, or a
// value >= Length() if it cannot be found.
func (s String) IndexOfLast(needle byte) int {
	i := strings.LastIndexByte(s.Data(), needle)
	if i < 0 {
		return s.Length()
	}
	return i
}

// Find returns the index of the first occurrence of needle, or a value >=
// Length() if it cannot be found.
func (s String) Find(needle String) int {
	i := strings.Index(s.Data(), needle.Data())
	if i < 0 {
		return s.Length()
	}
	return i
}

// FindLast returns the index of the last occurrence of needle, or a value
// >= Length() if it cannot be found.
func (s String) FindLast(needle String) int {
	i := strings.LastIndex(s.Data(), needle.Data())
	if i < 0 {
		return s.Length()
	}
	return i
}

// StartsWith reports whether s starts with prefix.
func (s String) StartsWith(prefix String) bool {
	return strings.HasPrefix(s.Data(), prefix.Data())
}

// EndsWith reports whether s ends with suffix.
func (s String) EndsWith(suffix String) bool {
	return strings.HasSuffix(s.Data(), suffix.Data())
}

// Equals reports whether s and other hold the same bytes, regardless of
// representation.
func (s String) Equals(other String) bool {
	return s.Length() == other.Length() && s.Data() == other.Data()
}

// Precedes reports whether s precedes other in lexicographic (byte-wise)
// order.
func (s String) Precedes(other String) bool {
	return s.Compare(other) < 0
}

// Compare compares s and other in lexicographic (byte-wise) order,
// returning -1, 0, or 1.
func (s String) Compare(other String) int {
	return strings.Compare(s.Data(), other.Data())
}

// isUpperByte/isLowerByte/toUpperByte/toLowerByte mirror the ASCII-only
// case helpers the C source uses (a bare XOR 0x20 flip), rather than
// Unicode-aware case folding: gulib's strings are byte strings, not
// Unicode text.
func isUpperByte(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLowerByte(c byte) bool { return c >= 'a' && c <= 'z' }
func toUpperByte(c byte) byte {
	if isLowerByte(c) {
		return c ^ 0x20
	}
	return c
}
func toLowerByte(c byte) byte {
	if isUpperByte(c) {
		return c ^ 0x20
	}
	return c
}

// IsUpper reports whether s contains no lowercase ASCII characters.
func (s String) IsUpper() bool {
	d := s.Data()
	for i := 0; i < len(d); i++ {
		if isLowerByte(d[i]) {
			return false
		}
	}
	return true
}

// IsLower reports whether s contains no uppercase ASCII characters.
func (s String) IsLower() bool {
	d := s.Data()
	for i := 0; i < len(d); i++ {
		if isUpperByte(d[i]) {
			return false
		}
	}
	return true
}

// ToUpper returns a copy of s with ASCII letters upper-cased.
func (s String) ToUpper() String {
	d := []byte(s.Data())
	for i := range d {
		d[i] = toUpperByte(d[i])
	}
	return Copy(d)
}

// ToLower returns a copy of s with ASCII letters lower-cased.
func (s String) ToLower() String {
	d := []byte(s.Data())
	for i := range d {
		d[i] = toLowerByte(d[i])
	}
	return Copy(d)
}

// windowPartSize is the width of each sampled window in Hash, matching
// the C implementation's part_size.
const windowPartSize = 32

// Hash computes a windowed K&R-style hash (h = h*31 + b, seeded with the
// length): strings up to 3*windowPartSize
// bytes are hashed in full; longer strings are hashed only over a prefix
// window, a window centered on the midpoint, and a suffix window, so that
// hashing a long string stays O(1) instead of O(length).
func (s String) Hash() uint64 {
	length := s.Length()
	data := s.Data()
	hash := uint64(length)

	hashRange := func(start, end int) {
		for i := start; i < end; i++ {
			hash = (hash << 5) - hash + uint64(data[i])
		}
	}

	if length <= 3*windowPartSize {
		hashRange(0, length)
	} else {
		halfIdx := length / 2
		halfPart := windowPartSize / 2
		hashRange(0, windowPartSize)
		hashRange(halfIdx-halfPart, halfIdx+halfPart)
		hashRange(length-windowPartSize, length)
	}

	return hash
}

// ToInt parses s as a signed integer in the given base (0 means infer from
// a 0x/0/0b prefix, as strconv.ParseInt does).
func (s String) ToInt(base int) (int64, error) {
	return strconv.ParseInt(s.Data(), base, 64)
}

// ToUint parses s as an unsigned integer in the given base.
func (s String) ToUint(base int) (uint64, error) {
	return strconv.ParseUint(s.Data(), base, 64)
}

// ToFloat parses s as a floating-point number.
func (s String) ToFloat() (float64, error) {
	return strconv.ParseFloat(s.Data(), 64)
}

// String implements fmt.Stringer.
func (s String) String() string { return s.Data() }
