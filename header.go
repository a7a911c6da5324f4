package etcheader

import (
	"bytes"
	"fmt"
)

// MinHeaderSize is the buffer length callers should hand to Decode.
// It covers the fixed KTX header; PKM needs only PKMHeaderSize bytes.
const MinHeaderSize = KTXHeaderSize

// Container identifies the file layout a buffer was recognized as.
type Container uint8

const (
	// ContainerUnknown means no magic matched.
	ContainerUnknown Container = iota
	// ContainerPKM10 is a PKM 1.0 (ETC1) file.
	ContainerPKM10
	// ContainerPKM20 is a PKM 2.0 (ETC2/EAC) file.
	ContainerPKM20
	// ContainerKTX is a KTX 1.1 file.
	ContainerKTX
)

func (c Container) String() string {
	switch c {
	case ContainerPKM10:
		return "PKM 10"
	case ContainerPKM20:
		return "PKM 20"
	case ContainerKTX:
		return "KTX 11"
	default:
		return "unknown"
	}
}

// Header is the decoded texture header. It is immutable and does not
// reference the buffer it was decoded from.
// The zero Header is the unrecognized result: zero sizes, FormatInvalid.
type Header struct {
	container     Container
	format        Format
	width         uint32
	height        uint32
	paddedWidth   uint32
	paddedHeight  uint32
	payloadOffset uint64

	// swap is set for KTX files written in the opposite byte order.
	swap bool
}

// Container returns the detected container.
func (h Header) Container() Container { return h.container }

// Width returns the declared texel width.
func (h Header) Width() uint32 { return h.width }

// Height returns the declared texel height.
func (h Header) Height() uint32 { return h.height }

// PaddedWidth returns the block-aligned width. For PKM it is the value stored
// in the file, for KTX the width rounded up to a multiple of 4.
func (h Header) PaddedWidth() uint32 { return h.paddedWidth }

// PaddedHeight returns the block-aligned height.
func (h Header) PaddedHeight() uint32 { return h.paddedHeight }

// PayloadOffset returns the byte offset of compressed texel data.
func (h Header) PayloadOffset() uint64 { return h.payloadOffset }

// Format returns the GL compressed format, or FormatInvalid.
func (h Header) Format() Format {
	if h.container == ContainerUnknown {
		return FormatInvalid
	}

	return h.format
}

// IsValid reports whether the header may be used to allocate a texture.
func (h Header) IsValid() bool {
	return h.Format().IsValid()
}

func (h Header) String() string {
	return fmt.Sprintf("%s %s %dx%d offset=%d", h.container, h.Format(), h.width, h.height, h.payloadOffset)
}

// Sniff reports which container the buffer's magic bytes announce.
// It does not check that the buffer is long enough to decode.
func Sniff(data []byte) Container {
	switch {
	case bytes.HasPrefix(data, pkm10Magic[:]):
		return ContainerPKM10
	case bytes.HasPrefix(data, pkm20Magic[:]):
		return ContainerPKM20
	case bytes.HasPrefix(data, ktxMagic[:]):
		return ContainerKTX
	default:
		return ContainerUnknown
	}
}

// Decode classifies data and extracts its header. Unrecognized or truncated
// input yields the zero Header; check IsValid before use.
func Decode(data []byte) Header {
	h, _ := Parse(data)
	return h
}

// Parse behaves like Decode and additionally reports why a header is not
// usable: ErrBufferTooShort when the magic matched but the buffer is shorter
// than the container header, ErrUnrecognizedFormat otherwise.
func Parse(data []byte) (Header, error) {
	var (
		h   Header
		err error
	)

	switch c := Sniff(data); c {
	case ContainerPKM10, ContainerPKM20:
		h, err = decodePKM(c, data)
	case ContainerKTX:
		h, err = decodeKTX(data)
	default:
		return Header{}, ErrUnrecognizedFormat
	}
	if err != nil {
		return Header{}, err
	}

	if !h.IsValid() {
		return h, fmt.Errorf("%w: %s %s", ErrUnrecognizedFormat, h.container, h.format)
	}

	return h, nil
}
