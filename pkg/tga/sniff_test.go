package tga

import (
	"bytes"
	"testing"
)

func TestMatchesExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"image.tga", true},
		{"IMAGE.TGA", true},
		{"dir/skin.Tga", true},
		{"image.tga.png", false},
		{"image.bmp", false},
		{"tga", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := MatchesExtension(tt.name); got != tt.want {
			t.Errorf("MatchesExtension(%q) = %t, want %t", tt.name, got, tt.want)
		}
	}
}

// buildFooter returns a valid 26-byte TGA 2.0 footer.
func buildFooter() []byte {
	footer := make([]byte, footerSize)
	copy(footer[8:], signature) // byte 25 stays NUL
	return footer
}

func TestMatchesSignature(t *testing.T) {
	body := bytes.Repeat([]byte{0xAA}, 64)

	if !MatchesSignature(bytes.NewReader(append(body, buildFooter()...))) {
		t.Error("expected valid footer to match")
	}
}

func TestMatchesSignature_FlippedByte(t *testing.T) {
	footer := buildFooter()
	footer[10] ^= 0xFF
	if MatchesSignature(bytes.NewReader(footer)) {
		t.Error("corrupted signature must not match")
	}
}

func TestMatchesSignature_MissingTerminator(t *testing.T) {
	footer := buildFooter()
	footer[footerSize-1] = 'X' // signature must be exact, not a prefix
	if MatchesSignature(bytes.NewReader(footer)) {
		t.Error("signature without NUL terminator must not match")
	}
}

func TestMatchesSignature_ShortFile(t *testing.T) {
	if MatchesSignature(bytes.NewReader([]byte("TRUEVISION"))) {
		t.Error("file shorter than the footer must not match")
	}
	if MatchesSignature(bytes.NewReader(nil)) {
		t.Error("empty file must not match")
	}
}

func TestMatchesSignature_NilStream(t *testing.T) {
	if MatchesSignature(nil) {
		t.Error("nil stream must not match")
	}
}
