package tga

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Faultbox/texel/pkg/bitmap"
)

// sentinelColor fills palette slots beyond the declared color-map length.
// Bright magenta makes an out-of-range pixel index visibly wrong instead of
// silently reading an arbitrary color.
const sentinelColor uint32 = 0xFFFF00CD

// buildPalette reads the raw color map and expands it into 32-bit ARGB
// entries. The palette always has at least 256 entries so any 8-bit index is
// in range; slots between the declared length and 256 hold sentinelColor.
//
// Declared entries with an unsupported bit size (anything other than
// 16/24/32) are left zeroed: opaque-black-adjacent but bounded, matching the
// format's loosely specified corner rather than failing the decode.
func buildPalette(r io.Reader, h *Header) ([]uint32, error) {
	declared := int(h.ColorMapLength)
	size := declared
	if size < 256 {
		size = 256
	}
	palette := make([]uint32, size)
	for i := declared; i < 256; i++ {
		palette[i] = sentinelColor
	}

	raw := make([]byte, declared*int(h.ColorMapEntrySize)/8)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: reading color map: %v", ErrTruncatedData, err)
	}

	switch h.ColorMapEntrySize {
	case 16:
		for i := 0; i < declared; i++ {
			palette[i] = bitmap.ARGB1555To8888(binary.LittleEndian.Uint16(raw[i*2:]))
		}
	case 24:
		for i := 0; i < declared; i++ {
			bgr := raw[i*3:]
			palette[i] = 0xFF000000 | uint32(bgr[2])<<16 | uint32(bgr[1])<<8 | uint32(bgr[0])
		}
	case 32:
		for i := 0; i < declared; i++ {
			bgra := raw[i*4:]
			palette[i] = uint32(bgra[3])<<24 | uint32(bgra[2])<<16 | uint32(bgra[1])<<8 | uint32(bgra[0])
		}
	}

	return palette, nil
}
