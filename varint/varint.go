// Package varint implements gulib's variable-length integer codec: LSB-first
// base-128 unsigned encoding with a continuation bit, and a zig-zag
// envelope for signed values. It underlies stream.WriteVarintUint/
// WriteVarintInt/ReadVarintUint/ReadVarintInt but has no dependency on the
// stream package itself, so it can be used directly against any []byte
// buffer.
package varint

import "github.com/ivanobilenchi/gulib/uerr"

const (
	hasMoreMask = 0x80
	valueMask   = 0x7F
	dataBits    = 7
)

// MaxLen is the maximum number of bytes an encoded uint64 can occupy:
// ceil(64/7).
const MaxLen = 10

// AppendUint appends the varint encoding of v to dst and returns the
// extended slice.
func AppendUint(dst []byte, v uint64) []byte {
	for v >= hasMoreMask {
		dst = append(dst, byte(v)|hasMoreMask)
		v >>= dataBits
	}
	return append(dst, byte(v))
}

// EncodeUint returns the varint encoding of v as a freshly allocated slice.
func EncodeUint(v uint64) []byte {
	return AppendUint(make([]byte, 0, MaxLen), v)
}

// DecodeUint decodes a varint-encoded uint64 from the front of buf,
// returning the value and the number of bytes consumed. It fails with
// uerr.Bounds if buf is exhausted before a terminating byte is seen, or if
// more than MaxLen bytes would be required (mirroring the stream codec's
// "i > sizeof(value)" overflow guard).
func DecodeUint(buf []byte) (value uint64, n int, err error) {
	var i int
	for {
		if i >= MaxLen {
			return 0, i, uerr.Wrap(uerr.Bounds, "varint: exceeds %d bytes", MaxLen)
		}
		if i >= len(buf) {
			return 0, i, uerr.Wrap(uerr.Bounds, "varint: truncated input")
		}
		b := buf[i]
		value |= uint64(b&valueMask) << (uint(i) * dataBits)
		i++
		if b&hasMoreMask == 0 {
			return value, i, nil
		}
	}
}

// AppendInt appends the zig-zag varint encoding of v to dst.
func AppendInt(dst []byte, v int64) []byte {
	return AppendUint(dst, zigZagEncode(v))
}

// EncodeInt returns the zig-zag varint encoding of v as a freshly allocated
// slice.
func EncodeInt(v int64) []byte {
	return AppendInt(make([]byte, 0, MaxLen), v)
}

// DecodeInt decodes a zig-zag varint-encoded int64 from the front of buf.
func DecodeInt(buf []byte) (value int64, n int, err error) {
	zz, n, err := DecodeUint(buf)
	if err != nil {
		return 0, n, err
	}
	return zigZagDecode(zz), n, nil
}

func zigZagEncode(v int64) uint64 {
	const mask = uint64(^uint64(0)) >> 1
	if v < 0 {
		return ^((uint64(v) & mask) << 1)
	}
	return uint64(v) << 1
}

func zigZagDecode(zz uint64) int64 {
	return int64(zz>>1) ^ -int64(zz&1)
}
