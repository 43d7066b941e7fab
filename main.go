package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/retina-ai/go-fundus-prep/batch"
	"github.com/retina-ai/go-fundus-prep/images"
)

func main() {
	var (
		inputDir  string
		outputDir string
		sigma     float64
		width     int
		height    int
		tolerance int
	)
	flag.StringVar(&inputDir, "input-dir", "", "Directory containing the input images (.jpg, .jpeg, .png)")
	flag.StringVar(&outputDir, "output-dir", "", "Directory the processed images are written to (created if missing)")
	flag.Float64Var(&sigma, "sigma", images.DefaultSigmaX, "Gaussian blur strength")
	flag.IntVar(&width, "width", images.DefaultOutputSize, "Output width in pixels")
	flag.IntVar(&height, "height", images.DefaultOutputSize, "Output height in pixels")
	flag.IntVar(&tolerance, "tolerance", int(images.DefaultDarkTolerance), "Darkness tolerance for border trimming (0-255)")
	flag.Parse()

	if inputDir == "" || outputDir == "" {
		log.Fatal("both -input-dir and -output-dir are required")
	}
	if width <= 0 || height <= 0 {
		log.Fatalf("invalid output size: %dx%d", width, height)
	}
	if tolerance < 0 || tolerance > 255 {
		log.Fatalf("invalid tolerance: %d", tolerance)
	}

	params := batch.Params{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Config: images.EnhanceConfig{
			SigmaX:        sigma,
			OutputWidth:   width,
			OutputHeight:  height,
			DarkTolerance: uint8(tolerance),
		},
	}

	fmt.Printf("Processing images from %s to %s (sigma %.1f, output %dx%d)\n",
		inputDir, outputDir, sigma, width, height)

	if _, err := batch.Run(params); err != nil {
		log.Fatal(err)
	}
}
