package etcheader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadOptions configures file and stream reading.
type ReadOptions struct {
	// Raw disables detection of LZ4/xz/zstd wrappers.
	Raw bool
	// MaxPayloadSize rejects payloads larger than this many bytes (0 = no limit).
	MaxPayloadSize int64
}

// ReadHeader reads up to MinHeaderSize bytes from r and parses them.
// A stream shorter than MinHeaderSize is not an error by itself: PKM files
// only need PKMHeaderSize bytes.
func ReadHeader(r io.Reader) (Header, error) {
	h, _, err := readHeader(r)
	return h, err
}

// ReadConfig reads a texture file header without reading payload data.
func ReadConfig(path string) (Header, error) {
	return ReadConfigWithOptions(path, nil)
}

// ReadConfigWithOptions reads a texture file header with the given options.
func ReadConfigWithOptions(path string, opts *ReadOptions) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	r, err := openStream(f, opts)
	if err != nil {
		return Header{}, err
	}
	defer func() { _ = r.Close() }()

	return ReadHeader(r)
}

// ReadPayload reads a texture file and returns its header and the level 0
// compressed payload.
func ReadPayload(path string) (Header, []byte, error) {
	return ReadPayloadWithOptions(path, nil)
}

// ReadPayloadWithOptions is ReadPayload with options. Nil opts uses defaults.
func ReadPayloadWithOptions(path string, opts *ReadOptions) (Header, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	r, err := openStream(f, opts)
	if err != nil {
		return Header{}, nil, err
	}
	defer func() { _ = r.Close() }()

	return ReadPayloadFrom(r, opts)
}

// ReadPayloadFrom reads a header and the level 0 payload from r, which must
// be positioned at the start of the file. Wrappers are not detected here.
func ReadPayloadFrom(r io.Reader, opts *ReadOptions) (Header, []byte, error) {
	h, head, err := readHeader(r)
	if err != nil {
		return h, nil, err
	}

	size := h.PayloadSize()
	if size < 0 {
		return h, nil, fmt.Errorf("%w: %s", ErrUnsupportedPayload, h.Format())
	}
	if opts != nil && opts.MaxPayloadSize > 0 && size > opts.MaxPayloadSize {
		return h, nil, fmt.Errorf("%w: payload %d exceeds limit %d", ErrSizeOverflow, size, opts.MaxPayloadSize)
	}
	n, err := intFromI64(size)
	if err != nil {
		return h, nil, err
	}

	offset, err := i64FromU64(h.PayloadOffset())
	if err != nil {
		return h, nil, err
	}

	src := io.MultiReader(bytes.NewReader(head), r)

	if h.Container() == ContainerKTX {
		if err := skip(src, offset-ktxImageSizeLength); err != nil {
			return h, nil, err
		}

		var prefix [ktxImageSizeLength]byte
		if _, err := io.ReadFull(src, prefix[:]); err != nil {
			return h, nil, fmt.Errorf("%w: imageSize: %v", ErrReadPayload, err)
		}
		if got := int64(ktxImageSize(h, prefix[:])); got != size {
			return h, nil, fmt.Errorf("%w: expected %d, got %d", ErrImageSizeMismatch, size, got)
		}
	} else if err := skip(src, offset); err != nil {
		return h, nil, err
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(src, payload); err != nil {
		return h, nil, fmt.Errorf("%w: %d bytes: %v", ErrReadPayload, n, err)
	}

	return h, payload, nil
}

// readHeader returns the parsed header and the bytes consumed from r.
func readHeader(r io.Reader) (Header, []byte, error) {
	buf := make([]byte, MinHeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrReadHeader, err)
	}
	buf = buf[:n]

	h, err := Parse(buf)
	if err != nil {
		return h, nil, err
	}

	return h, buf, nil
}

func skip(r io.Reader, n int64) error {
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return fmt.Errorf("%w: offset %d: %v", ErrSeekPayload, n, err)
	}

	return nil
}

func openStream(f io.Reader, opts *ReadOptions) (io.ReadCloser, error) {
	if opts != nil && opts.Raw {
		return io.NopCloser(f), nil
	}

	r, _, err := NewReader(f)
	return r, err
}
