package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/tyler-conrad/ray-tracer/pkg/renderer"
)

func main() {
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of parallel render workers")
	samples := flag.Int("samples", 32, "Anti-aliasing samples per pixel")
	seed := flag.Int64("scene-seed", 0, "Scene sequence seed (0 = time-based)")
	output := flag.String("output", "render.png", "Output PNG path")
	flag.Parse()

	opts := []renderer.Option{
		renderer.WithSampling(renderer.SamplingConfig{SamplesPerPixel: *samples}),
		renderer.WithLogger(log.New(os.Stderr, "", log.LstdFlags)),
	}
	if *seed != 0 {
		opts = append(opts, renderer.WithSceneSeed(*seed))
	}

	rt := renderer.NewRenderer(opts...)

	startTime := time.Now()
	buffer, err := rt.Render(*width, *height, *workers)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v (%d workers)\n", time.Since(startTime), *workers)

	img := &image.RGBA{
		Pix:    buffer,
		Stride: *width * 4,
		Rect:   image.Rect(0, 0, *width, *height),
	}

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
