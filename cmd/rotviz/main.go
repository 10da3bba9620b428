package main

import (
	"flag"
	"fmt"
	"os"

	"rotkit/internal/config"
	"rotkit/internal/sequence"
	"rotkit/internal/texture"
	"rotkit/spatial"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	skinPath := flag.String("skin", "", "Cube skin image (PNG/JPEG/TGA)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Number of frames (default: 36)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	roll := flag.Float64("roll", 0, "Target roll in degrees")
	pitch := flag.Float64("pitch", 0, "Target pitch in degrees")
	yaw := flag.Float64("yaw", 360, "Target yaw in degrees")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg.Roll = *roll
		cfg.Pitch = *pitch
		cfg.Yaw = *yaw
	}

	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		SkinPath:  *skinPath,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
	})

	runCfg := sequence.Config{
		OutputDir:   cfg.OutputDir,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}

	if cfg.SkinPath != "" {
		skin, err := texture.LoadSkin(cfg.SkinPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading skin: %v\n", err)
			os.Exit(1)
		}
		runCfg.Skin = skin
	}

	target := sequence.Pose{
		Roll:  cfg.Roll * spatial.DegToRad,
		Pitch: cfg.Pitch * spatial.DegToRad,
		Yaw:   cfg.Yaw * spatial.DegToRad,
	}
	poses := sequence.Plan(sequence.Pose{}, target, cfg.Frames)

	fmt.Printf("Rendering %d frames (%dx%d, %d workers) to %s\n",
		len(poses), cfg.Size, cfg.Size, cfg.Workers, cfg.OutputDir)

	results := sequence.Render(runCfg, poses)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %s\n", r.Frame, r.Error)
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d frames failed\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("Done: %d frames\n", len(results))
}
