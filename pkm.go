package etcheader

import (
	"encoding/binary"
	"fmt"
)

// PKMHeaderSize is the fixed PKM header length; texel data follows it.
const PKMHeaderSize = 16

var (
	pkm10Magic = [6]byte{'P', 'K', 'M', ' ', '1', '0'}
	pkm20Magic = [6]byte{'P', 'K', 'M', ' ', '2', '0'}
)

// PKM header layout, all fields big-endian uint16:
//
//	[0:6)   magic "PKM 10" or "PKM 20"
//	[6:8)   codec identifier
//	[8:10)  padded width
//	[10:12) padded height
//	[12:14) width
//	[14:16) height
const (
	pkmIdentifierOffset   = 6
	pkmPaddedWidthOffset  = 8
	pkmPaddedHeightOffset = 10
	pkmWidthOffset        = 12
	pkmHeightOffset       = 14
)

func decodePKM(c Container, data []byte) (Header, error) {
	if len(data) < PKMHeaderSize {
		return Header{}, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrBufferTooShort, c, PKMHeaderSize, len(data))
	}

	id := binary.BigEndian.Uint16(data[pkmIdentifierOffset:])

	return Header{
		container:     c,
		format:        FormatFromIdentifier(id),
		width:         uint32(binary.BigEndian.Uint16(data[pkmWidthOffset:])),
		height:        uint32(binary.BigEndian.Uint16(data[pkmHeightOffset:])),
		paddedWidth:   uint32(binary.BigEndian.Uint16(data[pkmPaddedWidthOffset:])),
		paddedHeight:  uint32(binary.BigEndian.Uint16(data[pkmPaddedHeightOffset:])),
		payloadOffset: PKMHeaderSize,
	}, nil
}
