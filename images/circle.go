package images

import (
	"image"

	"github.com/pkg/errors"
)

// CircleMask rasterizes a solid circle onto a zero-initialized
// single-channel canvas. Pixels inside the circle (including the
// boundary) are 255, everything else is 0.
//
// Arguments:
// - width, height: Canvas dimensions.
// - cx, cy: Circle center.
// - r: Circle radius in pixels.
//
// Returns:
// - The mask as an *image.Gray.
func CircleMask(width, height, cx, cy, r int) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, width, height))

	rr := r * r
	for y := 0; y < height; y++ {
		dy := y - cy
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < width; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= rr {
				row[x] = 255
			}
		}
	}

	return mask
}

// ApplyMask zeroes every color channel outside the mask and leaves
// pixels inside it untouched. Alpha is forced opaque everywhere so the
// masked image encodes as a plain three-channel raster.
//
// Arguments:
// - img: The image to mask.
// - mask: A single-channel mask of identical dimensions; zero means
//   outside.
//
// Returns:
// - A new masked *image.RGBA.
// - error: ErrMaskBounds if the mask dimensions differ from the image.
func ApplyMask(img *image.RGBA, mask *image.Gray) (*image.RGBA, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if mask.Bounds().Dx() != width || mask.Bounds().Dy() != height {
		return nil, errors.Wrapf(ErrMaskBounds, "image %dx%d, mask %dx%d",
			width, height, mask.Bounds().Dx(), mask.Bounds().Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < width; x++ {
				dstIdx := dst.PixOffset(x, y)
				if mask.Pix[y*mask.Stride+x] == 0 {
					dst.Pix[dstIdx+3] = 255
					continue
				}
				srcIdx := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				dst.Pix[dstIdx+0] = img.Pix[srcIdx+0]
				dst.Pix[dstIdx+1] = img.Pix[srcIdx+1]
				dst.Pix[dstIdx+2] = img.Pix[srcIdx+2]
				dst.Pix[dstIdx+3] = 255
			}
		}
	})

	return dst, nil
}
