package images

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG encodes a uniform image to a PNG file under dir.
func writeTestPNG(t *testing.T, dir, name string, w, h int, v uint8) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, newUniformRGBA(w, h, v)))
	return path
}

// writeTestJPEG encodes a uniform image to a JPEG file under dir.
func writeTestJPEG(t *testing.T, dir, name string, w, h int, v uint8) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, newUniformRGBA(w, h, v), nil))
	return path
}

func TestEnhanceOutputSize(t *testing.T) {
	dir := t.TempDir()
	path := writeTestJPEG(t, dir, "wide.jpg", 500, 400, 150)

	out, err := Enhance(path, GetPreviewConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputSize, out.Bounds().Dx())
	assert.Equal(t, DefaultOutputSize, out.Bounds().Dy())

	// A non-square target is honored exactly; aspect ratio is ignored.
	cfg := GetPreviewConfig()
	cfg.OutputWidth = 100
	cfg.OutputHeight = 50
	out, err = Enhance(path, cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())
}

func TestEnhanceUniformImageYieldsMidGray(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "flat.png", 200, 200, 90)

	cfg := EnhanceConfig{
		SigmaX:        2,
		OutputWidth:   100,
		OutputHeight:  100,
		DarkTolerance: DefaultDarkTolerance,
	}

	out, err := Enhance(path, cfg)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())

	// Blur of a constant region is the constant itself, so the blend
	// reduces to 4c - 4c + 128 = 128 deep inside the circle. Outside the
	// circle both terms are zero, so the far corners are 128 as well.
	for _, pt := range []image.Point{{50, 50}, {0, 0}, {99, 99}, {0, 99}, {99, 0}} {
		idx := out.PixOffset(pt.X, pt.Y)
		assert.Equal(t, uint8(128), out.Pix[idx+0], "R at %v", pt)
		assert.Equal(t, uint8(128), out.Pix[idx+1], "G at %v", pt)
		assert.Equal(t, uint8(128), out.Pix[idx+2], "B at %v", pt)
		assert.Equal(t, uint8(255), out.Pix[idx+3], "alpha at %v", pt)
	}
}

func TestEnhanceDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "corrupt.jpg")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not a jpeg"), 0o644))

	_, err := Enhance(garbage, GetPreviewConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Enhance(filepath.Join(dir, "missing.png"), GetPreviewConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode, "unreadable path is a decode failure")
}

func TestEnhanceTrimsBordersBeforeMasking(t *testing.T) {
	// Bright content surrounded by a black border; the inscribed circle
	// must be computed on the trimmed region, so the output center comes
	// from the bright content rather than the border.
	src := newUniformRGBA(120, 120, 0)
	for y := 30; y < 90; y++ {
		for x := 30; x < 90; x++ {
			idx := src.PixOffset(x, y)
			src.Pix[idx+0] = 90
			src.Pix[idx+1] = 90
			src.Pix[idx+2] = 90
		}
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bordered.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	cfg := EnhanceConfig{SigmaX: 2, OutputWidth: 60, OutputHeight: 60, DarkTolerance: DefaultDarkTolerance}
	out, err := Enhance(path, cfg)
	require.NoError(t, err)

	// After trimming, the whole 60x60 content is uniform, so the center
	// blends to exactly 128. Without the trim, the surviving black
	// border would pull the blurred term away from the masked term near
	// the edges but the center would still be interior; the dimension
	// is the decisive check.
	require.Equal(t, image.Rect(0, 0, 60, 60), out.Bounds())
	center := out.PixOffset(30, 30)
	assert.Equal(t, uint8(128), out.Pix[center+0])
}

func TestConfigPresets(t *testing.T) {
	preview := GetPreviewConfig()
	assert.Equal(t, 256, preview.OutputWidth)
	assert.Equal(t, 256, preview.OutputHeight)
	assert.Equal(t, 10.0, preview.SigmaX)
	assert.Equal(t, uint8(7), preview.DarkTolerance)

	model := GetModelInputConfig()
	assert.Equal(t, 224, model.OutputWidth)
	assert.Equal(t, 224, model.OutputHeight)
}
