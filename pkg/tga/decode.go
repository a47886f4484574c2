package tga

import (
	"fmt"
	"io"

	"github.com/Faultbox/texel/pkg/bitmap"
)

// Decode decodes a TGA stream with a default decoder.
func Decode(r io.ReadSeeker) (*bitmap.Bitmap, error) {
	return NewDecoder().Decode(r)
}

// Decode reads one TGA image from the stream, starting at the current
// position, and returns it normalized into a canonical bitmap. The whole
// image is materialized before return; there is no partial-result callback.
//
// A truncated RLE pixel stream is a soft failure: the region decoded so far
// is converted best-effort and the remaining rows stay zeroed. Every other
// failure returns a nil bitmap.
func (d *Decoder) Decode(r io.ReadSeeker) (*bitmap.Bitmap, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	// Reject hostile dimensions before any buffer is sized from them.
	if int(header.Width) > d.maxDimension || int(header.Height) > d.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d",
			ErrDimensionsTooLarge, header.Width, header.Height, d.maxDimension)
	}

	// The identification field carries free-form text; skip it unread.
	if header.IDLength > 0 {
		if _, err := r.Seek(int64(header.IDLength), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("%w: skipping id field: %v", ErrTruncatedData, err)
		}
	}

	var palette []uint32
	if header.ColorMapType != 0 {
		palette, err = buildPalette(r, &header)
		if err != nil {
			return nil, err
		}
	}

	raw, err := d.readPixels(r, &header)
	if err != nil {
		return nil, err
	}

	return convert(&header, raw, palette)
}

// readPixels produces the raw packed pixel buffer, branching on image type.
func (d *Decoder) readPixels(r io.Reader, h *Header) ([]byte, error) {
	size := int(h.Width) * int(h.Height) * h.BytesPerPixel()
	switch h.ImageType {
	case TypeUncompressedIndexed, TypeUncompressedRGB, TypeUncompressedGrey:
		buf := make([]byte, size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: reading pixel data: %v", ErrTruncatedData, err)
		}
		return buf, nil
	case TypeRLERGB:
		return d.decompressRLE(r, h.BytesPerPixel(), size), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedImageType, h.ImageType)
	}
}

// convert expands the packed pixel buffer into a canonical bitmap, dispatching
// on pixel depth. The descriptor's row-order bit is honored so the result is
// always stored top-down.
func convert(h *Header, raw []byte, palette []uint32) (*bitmap.Bitmap, error) {
	width, height := int(h.Width), int(h.Height)
	bottomUp := h.BottomUp()

	switch h.PixelDepth {
	case 8:
		if h.ImageType == TypeUncompressedGrey {
			bmp, err := bitmap.New(bitmap.FormatRGB888, width, height)
			if err != nil {
				return nil, err
			}
			bitmap.Expand8To24(raw, width, height, bottomUp, bmp.Pix)
			return bmp, nil
		}
		// The palette was already expanded to 32-bit ARGB, so one indexed
		// path handles every color-map entry size.
		if palette == nil {
			return nil, fmt.Errorf("%w: 8-bit image without color map", ErrUnsupportedImageType)
		}
		bmp, err := bitmap.New(bitmap.FormatARGB8888, width, height)
		if err != nil {
			return nil, err
		}
		bitmap.Expand8To32(raw, width, height, palette, bottomUp, bmp.Pix)
		return bmp, nil
	case 16:
		bmp, err := bitmap.New(bitmap.FormatARGB1555, width, height)
		if err != nil {
			return nil, err
		}
		bitmap.Copy16To16(raw, width, height, bottomUp, bmp.Pix)
		return bmp, nil
	case 24:
		bmp, err := bitmap.New(bitmap.FormatRGB888, width, height)
		if err != nil {
			return nil, err
		}
		bitmap.Swap24To24(raw, width, height, bottomUp, bmp.Pix)
		return bmp, nil
	case 32:
		bmp, err := bitmap.New(bitmap.FormatARGB8888, width, height)
		if err != nil {
			return nil, err
		}
		bitmap.Copy32To32(raw, width, height, bottomUp, bmp.Pix)
		return bmp, nil
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedPixelDepth, h.PixelDepth)
	}
}
