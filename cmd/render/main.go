package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tri-renderer/internal/config"
	"tri-renderer/internal/export"
	"tri-renderer/internal/mathutil"
	"tri-renderer/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Frame width in pixels (default: 800)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 600)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 1)")
	rotateEvery := flag.Int("rotate-every", 0, "Rotate vertex colors every N frames (0: never)")
	format := flag.String("format", "", "Output format: webp, png, tga (default: webp)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	background := flag.String("bg", "", "Background color as r,g,b in [0,1] (default: 1,1,1)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	if err := cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		Frames:      *frames,
		RotateEvery: *rotateEvery,
		Format:      *format,
		OutputDir:   *outputDir,
		Supersample: *supersample,
		Workers:     *workers,
		Background:  *background,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outFormat, err := export.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := raster.DefaultTriangle()

	// Print summary
	fmt.Printf("Triangle Renderer → %s\n", outFormat)
	fmt.Printf("Frame: %dx%d, Frames: %d, Workers: %d\n", cfg.Width, cfg.Height, cfg.Frames, cfg.Workers)
	if cfg.RotateEvery > 0 {
		fmt.Printf("Color rotation: every %d frames\n", cfg.RotateEvery)
	}
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results, err := export.Run(model, export.Config{
		OutputDir:   cfg.OutputDir,
		Format:      outFormat,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Frames:      cfg.Frames,
		RotateEvery: cfg.RotateEvery,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Background:  &mathutil.Vec3{cfg.Background[0], cfg.Background[1], cfg.Background[2]},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []export.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.File, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := export.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
