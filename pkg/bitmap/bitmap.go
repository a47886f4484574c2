// Package bitmap provides the canonical in-memory pixel container that image
// decoders produce, together with the color conversion routines used to
// expand source pixel encodings into the canonical formats.
package bitmap

import (
	"errors"
	"fmt"
)

// Bitmap errors.
var (
	ErrInvalidDimensions = errors.New("invalid bitmap dimensions")
	ErrUnknownFormat     = errors.New("unknown pixel format")
)

// Format identifies the pixel layout of a Bitmap.
type Format uint8

// Canonical pixel formats. Decoders normalize every source encoding into one
// of these so downstream consumers never see format-specific packing.
const (
	// FormatRGB888 stores 3 bytes per pixel in R, G, B order.
	FormatRGB888 Format = iota
	// FormatARGB8888 stores 4 bytes per pixel in B, G, R, A order, the
	// little-endian layout of a packed 32-bit ARGB word.
	FormatARGB8888
	// FormatARGB1555 stores 2 bytes per pixel, a little-endian 16-bit word
	// with 1 alpha bit and 5 bits per color channel.
	FormatARGB1555
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatRGB888:
		return "RGB888"
	case FormatARGB8888:
		return "ARGB8888"
	case FormatARGB1555:
		return "ARGB1555"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// BytesPerPixel returns the storage size of one pixel.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGB888:
		return 3
	case FormatARGB8888:
		return 4
	case FormatARGB1555:
		return 2
	default:
		return 0
	}
}

// Bitmap is a width x height pixel grid in one canonical format, stored
// top-down: row 0 of Pix is the top row of the image.
type Bitmap struct {
	Format Format
	Width  int
	Height int
	Pix    []byte // len = Width * Height * Format.BytesPerPixel()
}

// New allocates a zeroed bitmap. Width and height must be positive.
func New(format Format, width, height int) (*Bitmap, error) {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Bitmap{
		Format: format,
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*bpp),
	}, nil
}

// Stride returns the byte length of one pixel row.
func (b *Bitmap) Stride() int {
	return b.Width * b.Format.BytesPerPixel()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (b *Bitmap) PixOffset(x, y int) int {
	return (y*b.Width + x) * b.Format.BytesPerPixel()
}

// ARGBAt returns the pixel at (x, y) as a packed 32-bit ARGB value,
// expanding narrower formats. Out-of-range coordinates return 0.
func (b *Bitmap) ARGBAt(x, y int) uint32 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	i := b.PixOffset(x, y)
	switch b.Format {
	case FormatRGB888:
		return 0xFF000000 | uint32(b.Pix[i])<<16 | uint32(b.Pix[i+1])<<8 | uint32(b.Pix[i+2])
	case FormatARGB8888:
		return uint32(b.Pix[i+3])<<24 | uint32(b.Pix[i+2])<<16 | uint32(b.Pix[i+1])<<8 | uint32(b.Pix[i])
	case FormatARGB1555:
		return ARGB1555To8888(uint16(b.Pix[i]) | uint16(b.Pix[i+1])<<8)
	default:
		return 0
	}
}
