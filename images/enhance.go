package images

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Default enhancement parameters.
const (
	// DefaultSigmaX is the default Gaussian blur strength.
	DefaultSigmaX = 10.0
	// DefaultOutputSize is the output edge length the batch has always
	// been invoked with.
	DefaultOutputSize = 256
	// ModelInputSize is the edge length documented as the processing
	// function's own default, kept for callers preparing model inputs.
	ModelInputSize = 224
)

// EnhanceConfig holds the parameters of the circular enhancement
// pipeline. Configuration is passed explicitly; there is no package
// level mutable state.
type EnhanceConfig struct {
	// SigmaX is the Gaussian blur strength. The kernel size is derived
	// from it automatically.
	SigmaX float64
	// OutputWidth is the exact output width in pixels.
	OutputWidth int
	// OutputHeight is the exact output height in pixels.
	OutputHeight int
	// DarkTolerance is the border-trim darkness threshold.
	DarkTolerance uint8
}

// GetPreviewConfig returns the configuration the batch runs with by
// default: sigma 10, 256x256 output.
func GetPreviewConfig() EnhanceConfig {
	return EnhanceConfig{
		SigmaX:        DefaultSigmaX,
		OutputWidth:   DefaultOutputSize,
		OutputHeight:  DefaultOutputSize,
		DarkTolerance: DefaultDarkTolerance,
	}
}

// GetModelInputConfig returns the 224x224 configuration used when the
// outputs feed a classifier directly.
func GetModelInputConfig() EnhanceConfig {
	return EnhanceConfig{
		SigmaX:        DefaultSigmaX,
		OutputWidth:   ModelInputSize,
		OutputHeight:  ModelInputSize,
		DarkTolerance: DefaultDarkTolerance,
	}
}

// Enhance decodes the image at path and runs the circular enhancement
// pipeline: trim dark borders, mask to the inscribed circle, blend with
// a Gaussian-blurred copy and stretch-resize to the configured output
// dimensions.
//
// Arguments:
// - path: Path to a JPEG or PNG file.
// - cfg: The pipeline parameters.
//
// Returns:
// - The processed image, always exactly OutputWidth x OutputHeight.
// - error: ErrDecode if the file is not a readable image, ErrShape if
//   the decoded image has degenerate dimensions. Neither is recovered
//   here; the batch driver decides what a failure means.
//
// @example
// img, err := Enhance("input/scan.jpg", GetPreviewConfig())
func Enhance(path string, cfg EnhanceConfig) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "open %s: %v", path, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "decode %s: %v", path, err)
	}

	// Normalize to RGBA once; every later step assumes this order and
	// the encoder consumes the same order on write.
	src := ToRGBA(decoded)
	if src.Bounds().Dx() == 0 || src.Bounds().Dy() == 0 {
		return nil, errors.Wrapf(ErrShape, "decode %s: empty image", path)
	}

	trimmed, err := TrimDark(src, cfg.DarkTolerance)
	if err != nil {
		return nil, err
	}
	img := ToRGBA(trimmed)

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	cx := width / 2
	cy := height / 2
	r := cx
	if cy < r {
		r = cy
	}

	mask := CircleMask(width, height, cx, cy, r)
	masked, err := ApplyMask(img, mask)
	if err != nil {
		return nil, err
	}

	blurred := Blur(masked, cfg.SigmaX)

	blended, err := AddWeighted(masked, blurred, 4, -4, 128)
	if err != nil {
		return nil, err
	}

	// Stretch to the exact target dimensions; aspect ratio is
	// deliberately not preserved.
	out := resize.Resize(uint(cfg.OutputWidth), uint(cfg.OutputHeight), blended, resize.Lanczos3)

	return ToRGBA(out), nil
}
