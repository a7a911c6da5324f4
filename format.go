package etcheader

import "fmt"

// Format is a GL compressed internal format enum.
type Format uint32

// GL enums for the ETC2/EAC family (OpenGL ES 3.0) plus the legacy ETC1 one.
const (
	FormatR11EAC                      Format = 0x9270
	FormatSignedR11EAC                Format = 0x9271
	FormatRG11EAC                     Format = 0x9272
	FormatSignedRG11EAC               Format = 0x9273
	FormatRGB8ETC2                    Format = 0x9274
	FormatSRGB8ETC2                   Format = 0x9275
	FormatRGB8PunchthroughAlpha1ETC2  Format = 0x9276
	FormatSRGB8PunchthroughAlpha1ETC2 Format = 0x9277
	FormatRGBA8ETC2EAC                Format = 0x9278
	FormatSRGB8Alpha8ETC2EAC          Format = 0x9279
	FormatETC1RGB8                    Format = 0x8D64 // GL_ETC1_RGB8_OES
	FormatInvalid                     Format = 0x0501 // GL_INVALID_VALUE
)

// In a PKM file the codec is stored as an identifier (see ETCPACK):
//
//	0 ETC1_RGB_NO_MIPMAPS
//	1 ETC2PACKAGE_RGB_NO_MIPMAPS
//	2 ETC2PACKAGE_RGBA_NO_MIPMAPS_OLD (unused)
//	3 ETC2PACKAGE_RGBA_NO_MIPMAPS
//	4 ETC2PACKAGE_RGBA1_NO_MIPMAPS
//	5 ETC2PACKAGE_R_NO_MIPMAPS
//	6 ETC2PACKAGE_RG_NO_MIPMAPS
//	7 ETC2PACKAGE_R_SIGNED_NO_MIPMAPS
//	8 ETC2PACKAGE_RG_SIGNED_NO_MIPMAPS
//
// ETC1 data is valid ETC2 RGB8 data, so identifier 0 maps to RGB8 ETC2.
var identifierToFormat = [...]Format{
	FormatRGB8ETC2,
	FormatRGB8ETC2,
	FormatInvalid,
	FormatRGBA8ETC2EAC,
	FormatRGB8PunchthroughAlpha1ETC2,
	FormatR11EAC,
	FormatRG11EAC,
	FormatSignedR11EAC,
	FormatSignedRG11EAC,
}

// FormatFromIdentifier maps a PKM codec identifier to a GL format.
// Unknown identifiers yield FormatInvalid.
func FormatFromIdentifier(id uint16) Format {
	if int(id) >= len(identifierToFormat) {
		return FormatInvalid
	}

	return identifierToFormat[id]
}

// normalizeFormat folds legacy ETC1 into RGB8 ETC2.
func normalizeFormat(f Format) Format {
	if f == FormatETC1RGB8 {
		return FormatRGB8ETC2
	}

	return f
}

// IsValid reports whether f is one of the ETC2/EAC formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatR11EAC,
		FormatSignedR11EAC,
		FormatRG11EAC,
		FormatSignedRG11EAC,
		FormatRGB8ETC2,
		FormatSRGB8ETC2,
		FormatRGB8PunchthroughAlpha1ETC2,
		FormatSRGB8PunchthroughAlpha1ETC2,
		FormatRGBA8ETC2EAC,
		FormatSRGB8Alpha8ETC2EAC:
		return true
	default:
		return false
	}
}

// BlockSize returns bytes per 4x4 block, or 0 for unsupported formats.
func (f Format) BlockSize() int {
	switch f {
	case FormatR11EAC, FormatSignedR11EAC,
		FormatRGB8ETC2, FormatSRGB8ETC2,
		FormatRGB8PunchthroughAlpha1ETC2, FormatSRGB8PunchthroughAlpha1ETC2:
		return 8
	case FormatRG11EAC, FormatSignedRG11EAC,
		FormatRGBA8ETC2EAC, FormatSRGB8Alpha8ETC2EAC:
		return 16
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatR11EAC:
		return "R11_EAC"
	case FormatSignedR11EAC:
		return "SIGNED_R11_EAC"
	case FormatRG11EAC:
		return "RG11_EAC"
	case FormatSignedRG11EAC:
		return "SIGNED_RG11_EAC"
	case FormatRGB8ETC2:
		return "RGB8_ETC2"
	case FormatSRGB8ETC2:
		return "SRGB8_ETC2"
	case FormatRGB8PunchthroughAlpha1ETC2:
		return "RGB8_PUNCHTHROUGH_ALPHA1_ETC2"
	case FormatSRGB8PunchthroughAlpha1ETC2:
		return "SRGB8_PUNCHTHROUGH_ALPHA1_ETC2"
	case FormatRGBA8ETC2EAC:
		return "RGBA8_ETC2_EAC"
	case FormatSRGB8Alpha8ETC2EAC:
		return "SRGB8_ALPHA8_ETC2_EAC"
	case FormatETC1RGB8:
		return "ETC1_RGB8"
	case FormatInvalid:
		return "INVALID"
	default:
		return fmt.Sprintf("GL 0x%04X", uint32(f))
	}
}
