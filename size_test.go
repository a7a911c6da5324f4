package etcheader

import (
	"encoding/binary"
	"testing"
)

func TestDataLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		w, h   uint32
		want   int64
	}{
		{name: "rgb8-4x4", format: FormatRGB8ETC2, w: 4, h: 4, want: 8},
		{name: "rgb8-5x5", format: FormatRGB8ETC2, w: 5, h: 5, want: 32},
		{name: "rgba8-8x8", format: FormatRGBA8ETC2EAC, w: 8, h: 8, want: 64},
		{name: "r11-1x1", format: FormatR11EAC, w: 1, h: 1, want: 8},
		{name: "rg11-16x4", format: FormatRG11EAC, w: 16, h: 4, want: 64},
		{name: "zero", format: FormatRGB8ETC2, w: 0, h: 0, want: 0},
		{name: "wide", format: FormatRGBA8ETC2EAC, w: 0xFFFFFFFF, h: 4, want: 0x40000000 * 16},
		{name: "overflow", format: FormatRGBA8ETC2EAC, w: 0xFFFFFFFF, h: 0xFFFFFFFF, want: -1},
		{name: "unknown", format: FormatInvalid, w: 4, h: 4, want: -1},
	}

	for _, tc := range tests {
		if got := DataLength(tc.format, tc.w, tc.h); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPKMPayloadSizeMatchesPaddedRule(t *testing.T) {
	t.Parallel()

	for id := uint16(0); id <= 8; id++ {
		if id == 2 {
			continue
		}
		h := Decode(pkmBuffer(pkm20Magic, id, 64, 32, 61, 30))
		want := int64(64 * 32 / 2)
		switch h.Format() {
		case FormatRG11EAC, FormatSignedRG11EAC, FormatRGBA8ETC2EAC:
			want = 64 * 32
		}
		if got := h.PayloadSize(); got != want {
			t.Errorf("id %d (%s): payload size %d, want %d", id, h.Format(), got, want)
		}
	}
}

func TestPayloadSizeInvalid(t *testing.T) {
	t.Parallel()

	if got := Decode(nil).PayloadSize(); got != -1 {
		t.Fatalf("zero header: got %d", got)
	}
	if got := Decode(ktxBuffer(binary.LittleEndian, 0x83F1, 4, 4, 0)).PayloadSize(); got != -1 {
		t.Fatalf("non ETC2 KTX: got %d", got)
	}
}

func TestAlignBlock(t *testing.T) {
	t.Parallel()

	for in, want := range map[uint32]uint32{0: 0, 1: 4, 4: 4, 5: 8, 0xFFFFFFFC: 0xFFFFFFFC, 0xFFFFFFFE: 0xFFFFFFFE} {
		if got := alignBlock(in); got != want {
			t.Errorf("alignBlock(%d) = %d, want %d", in, got, want)
		}
	}
}
