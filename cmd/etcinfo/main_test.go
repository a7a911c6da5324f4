package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/woozymasta/etcheader"
)

func testHeader() etcheader.Header {
	return etcheader.Decode([]byte("PKM 20\x00\x03\x00\x08\x00\x08\x00\x07\x00\x06"))
}

func TestWriteInfoText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInfo(&buf, newInfoRecord("tex.pkm", testHeader()), false); err != nil {
		t.Fatalf("writeInfo: %v", err)
	}

	want := "tex.pkm: PKM 20 RGBA8_ETC2_EAC (0x9278) 7x6 padded 8x8, payload 64 B at offset 16\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteInfoInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInfo(&buf, newInfoRecord("x", etcheader.Header{}), false); err != nil {
		t.Fatalf("writeInfo: %v", err)
	}
	if !strings.Contains(buf.String(), "payload n/a") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInfo(&buf, newInfoRecord("tex.pkm", testHeader()), true); err != nil {
		t.Fatalf("writeInfo: %v", err)
	}

	var rec infoRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Format != "RGBA8_ETC2_EAC" || rec.Width != 7 || rec.PayloadOffset != 16 || rec.PayloadSize != 64 {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestPayloadHash(t *testing.T) {
	data := []byte("etc2 blocks")

	b3 := payloadHash("blake3", data)
	if len(b3) != 64 {
		t.Fatalf("blake3: unexpected length %d", len(b3))
	}
	xx := payloadHash("xxhash", data)
	if len(xx) != 16 {
		t.Fatalf("xxhash: unexpected length %d", len(xx))
	}
	if payloadHash("blake3", data) != b3 || payloadHash("xxhash", data) != xx {
		t.Fatalf("hash not deterministic")
	}
	if payloadHash("blake3", []byte("other")) == b3 {
		t.Fatalf("different payloads hashed equal")
	}
}
