// Package sequence plans and renders turntable frame sequences: a linear
// ramp of Euler angles from identity to a target pose, one WebP frame per
// step.
package sequence

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"rotkit/internal/gizmo"
	"rotkit/internal/postprocess"
	"rotkit/spatial"

	"github.com/HugoSmits86/nativewebp"
)

// Pose is a set of Euler angles in radians.
type Pose struct {
	Roll, Pitch, Yaw float64
}

// Config holds all shared resources for a sequence run.
type Config struct {
	OutputDir   string
	Skin        *image.NRGBA
	Size        int
	Supersample int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Plan returns one orientation per frame along a linear angle ramp from
// start to end. Each frame's angles go through the fixed Euler-to-quaternion
// convention; this is angle-space ramping, not quaternion interpolation.
func Plan(start, end Pose, frames int) []spatial.Quaternion {
	if frames < 1 {
		frames = 1
	}
	poses := make([]spatial.Quaternion, frames)
	for i := range poses {
		t := 0.0
		if frames > 1 {
			t = float64(i) / float64(frames-1)
		}
		poses[i] = spatial.FromAngles(
			start.Roll+(end.Roll-start.Roll)*t,
			start.Pitch+(end.Pitch-start.Pitch)*t,
			start.Yaw+(end.Yaw-start.Yaw)*t,
		)
	}
	return poses
}

// Render draws and encodes all frames using a worker pool.
func Render(cfg Config, poses []spatial.Quaternion) []Result {
	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	mesh := gizmo.Build()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, mesh, idx, poses[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range poses {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, mesh gizmo.Mesh, idx int, pose spatial.Quaternion) Result {
	img := gizmo.Render(mesh, pose, cfg.Skin, cfg.Size, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", idx))
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Path: outPath, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: idx, Path: outPath, Success: true}
}
