package compression

import (
	"io"

	"github.com/klauspost/compress/flate"
)

type DeflateDecompressor struct{}

// NewDeflateDecompressor creates a raw deflate (RFC 1951) decompressor
func NewDeflateDecompressor() Decompressor {
	return &DeflateDecompressor{}
}

func (d *DeflateDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

func (d *DeflateDecompressor) Type() CompressionType {
	return TypeDeflate
}

func (d *DeflateDecompressor) Implementation() string {
	return "Pure Go (klauspost/compress/flate)"
}

type DeflateCompressor struct {
	level int
}

// NewDeflateCompressor creates a raw deflate compressor. Levels outside
// flate's range fall back to flate.DefaultCompression.
func NewDeflateCompressor(level int) Compressor {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		level = flate.DefaultCompression
	}
	return &DeflateCompressor{level: level}
}

func (c *DeflateCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, c.level)
}

func (c *DeflateCompressor) Type() CompressionType {
	return TypeDeflate
}
