package images

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"
)

// DefaultDarkTolerance is the intensity at or below which a pixel is
// treated as dark border/background during trimming.
const DefaultDarkTolerance uint8 = 7

// TrimDark crops an image to the smallest bounding box containing
// pixels brighter than the tolerance, removing near-black borders.
//
// Single-channel (*image.Gray) inputs are thresholded directly; color
// inputs are thresholded on their luminance plane and all channels are
// cropped identically. If every pixel is at or below the tolerance the
// bounding box collapses, and the original image is returned unmodified
// rather than an empty crop.
//
// Arguments:
// - img: The source image (single-channel or color).
// - tol: The darkness tolerance; pixels must be strictly brighter to
//   count as content.
//
// Returns:
// - The trimmed image, re-based at the origin, or the original image
//   when the content box is empty.
// - error: ErrLayout if img is nil (caller contract violation).
//
// @example
// trimmed, err := TrimDark(decoded, DefaultDarkTolerance)
func TrimDark(img image.Image, tol uint8) (image.Image, error) {
	if img == nil {
		return nil, errors.Wrap(ErrLayout, "trim called with nil image")
	}

	if gray, ok := img.(*image.Gray); ok {
		box, ok := contentBox(gray, tol)
		if !ok {
			return img, nil
		}
		return cropGray(gray, box), nil
	}

	box, ok := contentBox(Luminance(img), tol)
	if !ok {
		return img, nil
	}
	return cropRGBA(ToRGBA(img), box), nil
}

// contentBox scans a luminance plane and returns the bounding box of
// pixels strictly brighter than tol, in the plane's own coordinates.
// Reports false when no pixel qualifies.
func contentBox(gray *image.Gray, tol uint8) (image.Rectangle, bool) {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	minX, minY := width, height
	maxX, maxY := -1, -1

	for y := 0; y < height; y++ {
		row := gray.Pix[(bounds.Min.Y+y-gray.Rect.Min.Y)*gray.Stride:]
		for x := 0; x < width; x++ {
			if row[bounds.Min.X+x-gray.Rect.Min.X] > tol {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(bounds.Min.X+minX, bounds.Min.Y+minY, bounds.Min.X+maxX+1, bounds.Min.Y+maxY+1), true
}

// cropGray copies the box region of src into a fresh Gray at (0,0).
func cropGray(src *image.Gray, box image.Rectangle) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), src, box.Min, draw.Src)
	return dst
}

// cropRGBA copies the box region of src into a fresh RGBA at (0,0).
func cropRGBA(src *image.RGBA, box image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), src, box.Min, draw.Src)
	return dst
}
