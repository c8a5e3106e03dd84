package stream

import (
	"bufio"
	"io"

	"github.com/ivanobilenchi/gulib/uerr"
	"github.com/ivanobilenchi/gulib/varint"
)

// WriteVarintUint writes v's unsigned varint encoding to w.
func WriteVarintUint(w io.Writer, v uint64) (int, error) {
	return w.Write(varint.EncodeUint(v))
}

// WriteVarintInt writes v's zig-zag varint encoding to w.
func WriteVarintInt(w io.Writer, v int64) (int, error) {
	return w.Write(varint.EncodeInt(v))
}

// byteReader is the minimal interface ReadVarintUint/ReadVarintInt need:
// a varint is decoded one byte at a time, since its length isn't known in
// advance.
type byteReader interface {
	ReadByte() (byte, error)
}

func asByteReader(r io.Reader) byteReader {
	if br, ok := r.(byteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// ReadVarintUint reads an unsigned varint from r.
func ReadVarintUint(r io.Reader) (uint64, error) {
	br := asByteReader(r)
	var buf [varint.MaxLen]byte
	n := 0
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, uerr.Wrap(uerr.IO, "stream: varint read failed: %v", err)
		}
		if n >= len(buf) {
			return 0, uerr.Wrap(uerr.Bounds, "stream: varint exceeds %d bytes", varint.MaxLen)
		}
		buf[n] = b
		n++
		if b&0x80 == 0 {
			break
		}
	}
	v, _, err := varint.DecodeUint(buf[:n])
	return v, err
}

// ReadVarintInt reads a zig-zag varint from r.
func ReadVarintInt(r io.Reader) (int64, error) {
	u, err := ReadVarintUint(r)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}
