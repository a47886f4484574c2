package tga

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuildPalette_SentinelFill(t *testing.T) {
	h := Header{
		ColorMapType:      1,
		ColorMapLength:    10,
		ColorMapEntrySize: 24,
	}
	raw := bytes.Repeat([]byte{255, 0, 0}, 10) // 10 blue entries (BGR)

	palette, err := buildPalette(bytes.NewReader(raw), &h)
	if err != nil {
		t.Fatalf("buildPalette failed: %v", err)
	}
	if len(palette) != 256 {
		t.Fatalf("expected 256 palette entries, got %d", len(palette))
	}
	for i := 0; i < 10; i++ {
		if palette[i] != 0xFF0000FF {
			t.Errorf("entry %d: expected blue FF0000FF, got %08X", i, palette[i])
		}
	}
	for i := 10; i < 256; i++ {
		if palette[i] != sentinelColor {
			t.Errorf("entry %d: expected sentinel %08X, got %08X", i, sentinelColor, palette[i])
		}
	}
}

func TestBuildPalette_DeclaredLengthAbove256(t *testing.T) {
	h := Header{
		ColorMapType:      1,
		ColorMapLength:    300,
		ColorMapEntrySize: 32,
	}
	raw := bytes.Repeat([]byte{4, 3, 2, 1}, 300) // BGRA

	palette, err := buildPalette(bytes.NewReader(raw), &h)
	if err != nil {
		t.Fatalf("buildPalette failed: %v", err)
	}
	if len(palette) != 300 {
		t.Fatalf("expected 300 palette entries, got %d", len(palette))
	}
	if palette[299] != 0x01020304 {
		t.Errorf("entry 299: expected 01020304, got %08X", palette[299])
	}
}

func TestBuildPalette_16BitEntries(t *testing.T) {
	h := Header{
		ColorMapType:      1,
		ColorMapLength:    2,
		ColorMapEntrySize: 16,
	}
	// Little-endian A1R5G5B5: opaque white, transparent red.
	raw := []byte{0xFF, 0xFF, 0x00, 0x7C}

	palette, err := buildPalette(bytes.NewReader(raw), &h)
	if err != nil {
		t.Fatalf("buildPalette failed: %v", err)
	}
	if palette[0] != 0xFFFFFFFF {
		t.Errorf("entry 0: expected FFFFFFFF, got %08X", palette[0])
	}
	if palette[1] != 0x00FF0000 {
		t.Errorf("entry 1: expected 00FF0000, got %08X", palette[1])
	}
}

func TestBuildPalette_32BitEntries(t *testing.T) {
	h := Header{
		ColorMapType:      1,
		ColorMapLength:    1,
		ColorMapEntrySize: 32,
	}
	raw := []byte{0x11, 0x22, 0x33, 0x44} // B, G, R, A

	palette, err := buildPalette(bytes.NewReader(raw), &h)
	if err != nil {
		t.Fatalf("buildPalette failed: %v", err)
	}
	if palette[0] != 0x44332211 {
		t.Errorf("entry 0: expected 44332211, got %08X", palette[0])
	}
}

// Unsupported entry sizes leave the declared slots untouched. The format is
// loosely specified here; the decoder guarantees bounded (zeroed) content
// rather than failing or producing undefined memory.
func TestBuildPalette_UnsupportedEntrySize(t *testing.T) {
	h := Header{
		ColorMapType:      1,
		ColorMapLength:    4,
		ColorMapEntrySize: 8,
	}
	raw := []byte{1, 2, 3, 4}

	palette, err := buildPalette(bytes.NewReader(raw), &h)
	if err != nil {
		t.Fatalf("buildPalette failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if palette[i] != 0 {
			t.Errorf("entry %d: expected zeroed slot, got %08X", i, palette[i])
		}
	}
	if palette[4] != sentinelColor {
		t.Errorf("entry 4: expected sentinel %08X, got %08X", sentinelColor, palette[4])
	}
}

func TestBuildPalette_Truncated(t *testing.T) {
	h := Header{
		ColorMapType:      1,
		ColorMapLength:    16,
		ColorMapEntrySize: 24,
	}
	raw := []byte{1, 2, 3} // 3 of 48 bytes

	_, err := buildPalette(bytes.NewReader(raw), &h)
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("expected ErrTruncatedData, got %v", err)
	}
}
