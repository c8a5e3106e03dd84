package stream

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/ivanobilenchi/gulib/uerr"
)

// CompressingWriter wraps w with a zstd encoder. Callers must Close the
// returned writer (which also flushes it) when done.
type CompressingWriter struct {
	enc *zstd.Encoder
}

// NewCompressingWriter wraps w with a zstd encoder at the given level.
func NewCompressingWriter(w io.Writer, level zstd.EncoderLevel) (*CompressingWriter, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, uerr.Wrap(uerr.IO, "stream: zstd encoder init failed: %v", err)
	}
	return &CompressingWriter{enc: enc}, nil
}

func (c *CompressingWriter) Write(p []byte) (int, error) { return c.enc.Write(p) }
func (c *CompressingWriter) Flush() error                { return c.enc.Flush() }
func (c *CompressingWriter) Close() error                { return c.enc.Close() }

// DecompressingReader wraps r with a zstd decoder, the read side of the
// compressing stream backend. Callers must Close the returned reader when
// done to release the decoder's internal goroutines/buffers.
type DecompressingReader struct {
	dec *zstd.Decoder
}

// NewDecompressingReader wraps r with a zstd decoder.
func NewDecompressingReader(r io.Reader) (*DecompressingReader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, uerr.Wrap(uerr.IO, "stream: zstd decoder init failed: %v", err)
	}
	return &DecompressingReader{dec: dec}, nil
}

func (d *DecompressingReader) Read(p []byte) (int, error) { return d.dec.Read(p) }
func (d *DecompressingReader) Close() error {
	d.dec.Close()
	return nil
}
