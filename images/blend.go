package images

import (
	"image"

	"github.com/pkg/errors"
)

// AddWeighted computes dst = alpha*a + beta*b + gamma per color channel
// with clamping to the valid 8-bit range. The enhancement step uses it
// as an unsharp-style blend: AddWeighted(masked, blurred, 4, -4, 128)
// amplifies the high-frequency residual and re-centers it around
// mid-gray. Alpha is forced opaque; only R, G and B are blended.
//
// Arguments:
// - a, b: Source images of identical dimensions.
// - alpha, beta: Per-image weights.
// - gamma: Scalar added to every weighted sum.
//
// Returns:
// - The blended *image.RGBA.
// - error: ErrMaskBounds if the two images differ in dimensions.
func AddWeighted(a, b *image.RGBA, alpha, beta, gamma float64) (*image.RGBA, error) {
	width := a.Bounds().Dx()
	height := a.Bounds().Dy()

	if b.Bounds().Dx() != width || b.Bounds().Dy() != height {
		return nil, errors.Wrapf(ErrMaskBounds, "blend inputs %dx%d and %dx%d",
			width, height, b.Bounds().Dx(), b.Bounds().Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < width; x++ {
				aIdx := a.PixOffset(a.Bounds().Min.X+x, a.Bounds().Min.Y+y)
				bIdx := b.PixOffset(b.Bounds().Min.X+x, b.Bounds().Min.Y+y)
				dstIdx := dst.PixOffset(x, y)

				for c := 0; c < 3; c++ {
					v := alpha*float64(a.Pix[aIdx+c]) + beta*float64(b.Pix[bIdx+c]) + gamma
					dst.Pix[dstIdx+c] = uint8(Clamp(v, 0, 255) + 0.5)
				}
				dst.Pix[dstIdx+3] = 255
			}
		}
	})

	return dst, nil
}
