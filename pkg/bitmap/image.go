package bitmap

import (
	"image"
	"image/color"
)

// ToRGBA converts the bitmap to a stdlib *image.RGBA for interop with
// image/png and friends. Alpha-less formats come out fully opaque.
func (b *Bitmap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.ARGBAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c >> 16),
				G: uint8(c >> 8),
				B: uint8(c),
				A: uint8(c >> 24),
			})
		}
	}
	return img
}
