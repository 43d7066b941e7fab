// Package images provides the per-image transforms used by the fundus
// preprocessing pipeline: dark-border trimming, inscribed-circle
// masking, separable Gaussian blur and weighted blending.
package images

import (
	"image"
	"image/draw"
)

// Luminance weights matching the conversion the pipeline's historical
// outputs were produced with (ITU-R BT.601).
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// ToRGBA returns an *image.RGBA view of img. If img already is an
// *image.RGBA it is returned as-is; otherwise the pixels are drawn into
// a freshly allocated RGBA re-based at the origin. All blending math in
// this package assumes this single channel order.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == image.Pt(0, 0) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Luminance converts an image to a single-channel luminance plane.
//
// Arguments:
// - img: The source image.
//
// Returns:
// - A new *image.Gray of the same dimensions, re-based at the origin.
func Luminance(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	dst := image.NewGray(image.Rect(0, 0, width, height))

	Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			srcY := bounds.Min.Y + y
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, srcY).RGBA()

				// RGBA() returns 16-bit samples; weight in that space
				// and shift down to 8-bit afterwards.
				luma := lumaRed*float64(r) + lumaGreen*float64(g) + lumaBlue*float64(b)
				dst.Pix[y*dst.Stride+x] = uint8(uint32(luma) >> 8)
			}
		}
	})

	return dst
}
