package etcheader

import "errors"

var (
	// ErrUnrecognizedFormat indicates no known container or compressed format.
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	// ErrBufferTooShort indicates a buffer shorter than its container header.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrSizeOverflow indicates a size or offset exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrOpenFile indicates texture file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadHeader indicates reading header bytes failed.
	ErrReadHeader = errors.New("reading header failed")
	// ErrDecompress indicates the compressed wrapper could not be opened.
	ErrDecompress = errors.New("decompress stream failed")
	// ErrUnsupportedPayload indicates the payload size cannot be computed.
	ErrUnsupportedPayload = errors.New("unsupported payload format")
	// ErrSeekPayload indicates skipping to the payload offset failed.
	ErrSeekPayload = errors.New("seek to payload failed")
	// ErrReadPayload indicates reading payload bytes failed.
	ErrReadPayload = errors.New("reading payload failed")
	// ErrImageSizeMismatch indicates the KTX imageSize field disagrees with the header.
	ErrImageSizeMismatch = errors.New("KTX image size mismatch")
)
