// Package batch drives the circular enhancement pipeline over a
// directory of images, one file at a time, isolating failures per file.
package batch

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/retina-ai/go-fundus-prep/images"
	"github.com/retina-ai/go-fundus-prep/util"
)

// Params configures a batch run. It is read-only for the duration of
// the run.
type Params struct {
	// InputDir is the directory whose image files are processed.
	InputDir string
	// OutputDir is the directory results are written to. It is created
	// (with parents) if missing and never cleared; stale outputs from
	// earlier runs persist unless overwritten by same-named files.
	OutputDir string
	// Config holds the per-image pipeline parameters.
	Config images.EnhanceConfig
}

// DefaultParams returns batch parameters with the default pipeline
// configuration (sigma 10, 256x256 output).
func DefaultParams(inputDir, outputDir string) Params {
	return Params{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Config:    images.GetPreviewConfig(),
	}
}

// Result records the outcome for one eligible input file.
type Result struct {
	// Name is the input file name.
	Name string
	// Path is the written output path; empty when Err is set.
	Path string
	// Err is the failure that made this file be skipped, if any.
	Err error
}

// Run processes every eligible image file in p.InputDir and writes the
// results to p.OutputDir under the same names, printing one status line
// per file. A failure while processing one file is reported and the
// batch continues; the only fatal error is failing to create the output
// directory, which aborts before any file is touched.
//
// Arguments:
// - p: The batch parameters.
//
// Returns:
// - []Result: One entry per eligible file, in processing order.
// - error: Non-nil only when the run could not start.
//
// @example
// results, err := batch.Run(batch.DefaultParams("in", "out"))
func Run(p Params) ([]Result, error) {
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output directory %s", p.OutputDir)
	}

	names, err := util.ListImageFiles(p.InputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "list input directory %s", p.InputDir)
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		outPath, err := processFile(name, p)
		if err != nil {
			fmt.Printf("Failed to process image %s: %v\n", name, err)
			results = append(results, Result{Name: name, Err: err})
			continue
		}
		fmt.Printf("Processed image saved to: %s\n", outPath)
		results = append(results, Result{Name: name, Path: outPath})
	}

	return results, nil
}

// processFile runs the pipeline for a single file and writes the
// result, returning the output path.
func processFile(name string, p Params) (string, error) {
	img, err := images.Enhance(filepath.Join(p.InputDir, name), p.Config)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(p.OutputDir, name)
	if err := writeImage(outPath, img); err != nil {
		return "", err
	}
	return outPath, nil
}

// writeImage encodes img to path with the codec inferred from the
// file extension.
func writeImage(path string, img *image.RGBA) error {
	format, ok := images.FormatFromExtension(filepath.Ext(path))
	if !ok {
		return errors.Errorf("no encoder for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	switch format {
	case images.FormatPNG:
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, nil)
	}
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return nil
}
