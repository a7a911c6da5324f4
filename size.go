package etcheader

// ETC2/EAC blocks cover 4x4 texels.
const blockDim = 4

// alignBlock rounds v up to a multiple of the block dimension.
func alignBlock(v uint32) uint32 {
	if v > ^uint32(0)-(blockDim-1) {
		return v
	}

	return (v + blockDim - 1) &^ (blockDim - 1)
}

// DataLength returns the compressed size of a width x height level in format,
// or -1 if format has no known block size or the size overflows int64.
func DataLength(format Format, width, height uint32) int64 {
	blockSize := format.BlockSize()
	if blockSize == 0 {
		return -1
	}

	blocksW := (int64(width) + blockDim - 1) / blockDim
	blocksH := (int64(height) + blockDim - 1) / blockDim

	blocks := blocksW * blocksH
	if blocks > int64(maxInt64)/int64(blockSize) {
		return -1
	}

	return blocks * int64(blockSize)
}

// PayloadSize returns the byte length of the level 0 compressed payload,
// computed from the padded dimensions, or -1 for invalid headers.
//
// For PKM this matches paddedWidth*paddedHeight/2 for 8-byte block formats
// and paddedWidth*paddedHeight for 16-byte ones.
func (h Header) PayloadSize() int64 {
	if !h.IsValid() {
		return -1
	}

	return DataLength(h.Format(), h.paddedWidth, h.paddedHeight)
}
