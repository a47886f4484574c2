package bitmap

// Conversion routines from packed source pixel buffers into canonical
// formats. Every routine takes the source in its on-disk (little-endian)
// byte order and a bottomUp flag: when set, the source stores its last row
// first and rows are flipped so the destination is always top-down.
//
// Source buffers may be shorter than width*height pixels (a decoder may
// hand over a partially filled buffer after recovering from truncated
// input); conversion stops at the end of the source and leaves the
// remaining destination pixels zeroed.

// srcRow returns the source row index feeding destination row y.
func srcRow(y, height int, bottomUp bool) int {
	if bottomUp {
		return height - 1 - y
	}
	return y
}

// ARGB1555To8888 expands one 1-5-5-5 pixel to a packed 32-bit ARGB value.
// The single alpha bit maps to 0x00 or 0xFF; each 5-bit channel is
// stretched to 8 bits by replicating its high bits.
func ARGB1555To8888(v uint16) uint32 {
	var a uint32
	if v&0x8000 != 0 {
		a = 0xFF000000
	}
	r := uint32(v>>10) & 0x1F
	g := uint32(v>>5) & 0x1F
	b := uint32(v) & 0x1F
	return a |
		(r<<3|r>>2)<<16 |
		(g<<3|g>>2)<<8 |
		(b<<3 | b>>2)
}

// Expand8To24 converts an 8-bit greyscale buffer to RGB888, replicating
// each sample into all three channels.
func Expand8To24(src []byte, width, height int, bottomUp bool, dst []byte) {
	for y := 0; y < height; y++ {
		sy := srcRow(y, height, bottomUp)
		for x := 0; x < width; x++ {
			si := sy*width + x
			if si >= len(src) {
				continue
			}
			di := (y*width + x) * 3
			v := src[si]
			dst[di] = v
			dst[di+1] = v
			dst[di+2] = v
		}
	}
}

// Expand8To32 converts an 8-bit indexed buffer to ARGB8888 by palette
// lookup. The palette holds packed ARGB words and must cover every possible
// index value (256 entries).
func Expand8To32(src []byte, width, height int, palette []uint32, bottomUp bool, dst []byte) {
	for y := 0; y < height; y++ {
		sy := srcRow(y, height, bottomUp)
		for x := 0; x < width; x++ {
			si := sy*width + x
			if si >= len(src) {
				continue
			}
			c := palette[src[si]]
			di := (y*width + x) * 4
			dst[di] = byte(c)
			dst[di+1] = byte(c >> 8)
			dst[di+2] = byte(c >> 16)
			dst[di+3] = byte(c >> 24)
		}
	}
}

// Copy16To16 copies packed ARGB1555 rows, flipping row order if needed.
// Pixels stay little-endian 16-bit words, so no per-pixel work is done.
func Copy16To16(src []byte, width, height int, bottomUp bool, dst []byte) {
	copyRows(src, width*2, height, bottomUp, dst)
}

// Swap24To24 converts byte-order BGR rows to RGB888.
func Swap24To24(src []byte, width, height int, bottomUp bool, dst []byte) {
	for y := 0; y < height; y++ {
		sy := srcRow(y, height, bottomUp)
		for x := 0; x < width; x++ {
			si := (sy*width + x) * 3
			if si+3 > len(src) {
				continue
			}
			di := (y*width + x) * 3
			dst[di] = src[si+2]
			dst[di+1] = src[si+1]
			dst[di+2] = src[si]
		}
	}
}

// Copy32To32 copies byte-order BGRA rows into ARGB8888, flipping row order
// if needed. BGRA byte order is exactly the little-endian layout of a packed
// ARGB word, so the copy is assembled row-by-row rather than reinterpreted.
func Copy32To32(src []byte, width, height int, bottomUp bool, dst []byte) {
	copyRows(src, width*4, height, bottomUp, dst)
}

// copyRows copies whole rows of stride bytes, honoring row order and
// tolerating a short source on the final rows.
func copyRows(src []byte, stride, height int, bottomUp bool, dst []byte) {
	for y := 0; y < height; y++ {
		sy := srcRow(y, height, bottomUp)
		so := sy * stride
		if so >= len(src) {
			continue
		}
		row := src[so:]
		if len(row) > stride {
			row = row[:stride]
		}
		copy(dst[y*stride:(y+1)*stride], row)
	}
}
