package tga

import (
	"io"
	"path/filepath"
	"strings"
)

// MatchesExtension reports whether the filename has the .tga extension,
// case-insensitively. No I/O is performed.
func MatchesExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".tga")
}

// MatchesSignature reports whether the stream ends in a TGA 2.0 footer with
// the exact "TRUEVISION-XFILE." signature. Very old TGA files lack the
// footer and are refused here; absence of the footer does not by itself
// prove a file is not TGA, so this is only used for content sniffing.
// The stream's read position is not preserved.
func MatchesSignature(r io.ReadSeeker) bool {
	if r == nil {
		return false
	}
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil || size < footerSize {
		return false
	}
	if _, err := r.Seek(size-footerSize, io.SeekStart); err != nil {
		return false
	}
	var footer [footerSize]byte
	if _, err := io.ReadFull(r, footer[:]); err != nil {
		return false
	}
	// Footer: two 4-byte offsets, then the 18-byte signature field
	// (17 characters and a NUL).
	sig := footer[8:]
	return string(sig[:len(signature)]) == signature && sig[len(signature)] == 0
}

// MatchesContent implements content sniffing for the loader registry.
func (d *Decoder) MatchesContent(r io.ReadSeeker) bool {
	return MatchesSignature(r)
}

// MatchesExtension implements extension matching for the loader registry.
func (d *Decoder) MatchesExtension(name string) bool {
	return MatchesExtension(name)
}
