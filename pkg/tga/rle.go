package tga

import (
	"io"

	"go.uber.org/zap"
)

// decompressRLE expands the TGA packet-based run-length encoding into a flat
// pixel buffer of up to size bytes. Each packet starts with a header byte:
// values 0-127 introduce a raw packet of header+1 literal pixels, values
// 128-255 a run packet repeating one pixel sample header-127 times.
//
// Malformed or truncated streams are common in the wild, so every write is
// bounds-checked against the pre-sized output: a packet that would overrun
// the buffer stops decoding with a warning and the bytes filled so far are
// returned. The returned slice may therefore be shorter than size.
func (d *Decoder) decompressRLE(r io.Reader, bytesPerPixel, size int) []byte {
	out := make([]byte, size)
	offset := 0
	var hdr [1]byte

	for offset < size {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			d.log.Warn("RLE stream ended before image was complete",
				zap.Int("filled", offset), zap.Int("expected", size))
			break
		}

		if hdr[0] < 128 {
			// Raw packet: hdr+1 literal pixels follow.
			n := (int(hdr[0]) + 1) * bytesPerPixel
			if offset+n > size {
				d.log.Warn("RLE raw packet tries writing beyond buffer",
					zap.Int("filled", offset), zap.Int("expected", size))
				break
			}
			m, err := io.ReadFull(r, out[offset:offset+n])
			offset += m
			if err != nil {
				d.log.Warn("RLE raw packet truncated",
					zap.Int("filled", offset), zap.Int("expected", size))
				break
			}
		} else {
			// Run packet: one pixel sample, repeated hdr-127 times. The
			// first repetition is the sample read itself.
			count := int(hdr[0]) - 127
			if offset+bytesPerPixel > size {
				d.log.Warn("RLE run packet tries writing beyond buffer",
					zap.Int("filled", offset), zap.Int("expected", size))
				break
			}
			sampleAt := offset
			if _, err := io.ReadFull(r, out[offset:offset+bytesPerPixel]); err != nil {
				d.log.Warn("RLE run sample truncated",
					zap.Int("filled", offset), zap.Int("expected", size))
				break
			}
			offset += bytesPerPixel

			overrun := false
			for i := 1; i < count; i++ {
				if offset+bytesPerPixel > size {
					d.log.Warn("RLE run packet tries writing beyond buffer",
						zap.Int("filled", offset), zap.Int("expected", size))
					overrun = true
					break
				}
				copy(out[offset:offset+bytesPerPixel], out[sampleAt:sampleAt+bytesPerPixel])
				offset += bytesPerPixel
			}
			if overrun {
				break
			}
		}
	}

	return out[:offset]
}
