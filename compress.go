package etcheader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Compression is the outer wrapper detected around a texture stream.
type Compression uint8

const (
	// CompressionNone means the stream is a bare PKM/KTX file.
	CompressionNone Compression = iota
	// CompressionLZ4 is an LZ4 frame.
	CompressionLZ4
	// CompressionXZ is an xz stream.
	CompressionXZ
	// CompressionZstd is a zstd frame.
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionLZ4:
		return "lz4"
	case CompressionXZ:
		return "xz"
	case CompressionZstd:
		return "zstd"
	default:
		return "none"
	}
}

var (
	lz4FrameMagic = []byte{0x04, 0x22, 0x4D, 0x18}
	xzMagic       = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	zstdMagic     = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// sniffLen covers the longest wrapper magic.
const sniffLen = 6

// NewReader detects an LZ4, xz or zstd wrapper on r and returns a reader of
// the decompressed stream. Unwrapped streams are passed through.
// Closing the result releases decoder state but never closes r.
func NewReader(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(sniffLen)
	if err != nil && len(magic) == 0 && err != io.EOF {
		return nil, CompressionNone, fmt.Errorf("%w: %v", ErrReadHeader, err)
	}

	switch {
	case bytes.HasPrefix(magic, lz4FrameMagic):
		return io.NopCloser(lz4.NewReader(br)), CompressionLZ4, nil
	case bytes.HasPrefix(magic, xzMagic):
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, CompressionXZ, fmt.Errorf("%w: xz: %v", ErrDecompress, err)
		}
		return io.NopCloser(xzr), CompressionXZ, nil
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, CompressionZstd, fmt.Errorf("%w: zstd: %v", ErrDecompress, err)
		}
		return dec.IOReadCloser(), CompressionZstd, nil
	default:
		return io.NopCloser(br), CompressionNone, nil
	}
}
