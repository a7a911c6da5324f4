/*
Package etcheader reads the headers of ETC1/ETC2/EAC compressed-texture
containers (PKM 1.0, PKM 2.0 and KTX 1.1) without decoding texel data.

A decoded Header carries the declared width and height, the GL compressed
format enum and the byte offset where the compressed payload starts, which
is all a renderer needs to allocate a texture and upload the blocks as-is.

Decode never fails: buffers that are not recognized, or are too short for
the container their magic announces, produce the zero Header whose format is
FormatInvalid. Parse returns the same Header plus a diagnostic error.
File helpers unwrap LZ4 frame, xz and zstd compressed assets transparently.
*/
package etcheader
