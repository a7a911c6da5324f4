package etcheader

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// KTXHeaderSize is the fixed KTX 1.1 header length, before key/value data.
const KTXHeaderSize = 64

// ktxEndianReference is the endianness field as read by a matching reader.
const ktxEndianReference = 0x04030201

var ktxMagic = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// Offsets of the uint32 KTX header fields used here.
const (
	ktxEndiannessOffset       = 12
	ktxGLInternalFormatOffset = 28
	ktxPixelWidthOffset       = 36
	ktxPixelHeightOffset      = 40
	ktxKeyValueBytesOffset    = 60
)

// ktxImageSizeLength is the uint32 imageSize prefix before level 0 data.
const ktxImageSizeLength = 4

// ReverseBytes32 swaps the byte order of v (bytes 0<->3, 1<->2).
func ReverseBytes32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// ktxFields reads uint32 fields honoring the file's endianness marker.
type ktxFields struct {
	data []byte
	swap bool
}

func (f ktxFields) field(off int) uint32 {
	v := binary.LittleEndian.Uint32(f.data[off : off+4])
	if f.swap {
		v = ReverseBytes32(v)
	}

	return v
}

// ktxImageSize decodes the imageSize prefix stored just before level 0.
func ktxImageSize(h Header, prefix []byte) uint32 {
	return ktxFields{data: prefix, swap: h.swap}.field(0)
}

func decodeKTX(data []byte) (Header, error) {
	if len(data) < KTXHeaderSize {
		return Header{}, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrBufferTooShort, ContainerKTX, KTXHeaderSize, len(data))
	}

	f := ktxFields{
		data: data,
		swap: binary.LittleEndian.Uint32(data[ktxEndiannessOffset:]) != ktxEndianReference,
	}

	width := f.field(ktxPixelWidthOffset)
	height := f.field(ktxPixelHeightOffset)
	kvBytes := f.field(ktxKeyValueBytesOffset)

	// Raw formats are passed through; Header.IsValid filters non ETC2/EAC ones.
	return Header{
		container:     ContainerKTX,
		format:        normalizeFormat(Format(f.field(ktxGLInternalFormatOffset))),
		width:         width,
		height:        height,
		paddedWidth:   alignBlock(width),
		paddedHeight:  alignBlock(height),
		payloadOffset: KTXHeaderSize + uint64(kvBytes) + ktxImageSizeLength,
		swap:          f.swap,
	}, nil
}
