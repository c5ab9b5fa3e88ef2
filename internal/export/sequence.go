package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"tri-renderer/internal/mathutil"
	"tri-renderer/internal/postprocess"
	"tri-renderer/internal/raster"
)

// Config holds the shared settings for a sequence run.
type Config struct {
	OutputDir   string
	Format      Format
	Width       int
	Height      int
	Frames      int
	RotateEvery int            // rotate vertex colors every N frames; 0 disables rotation
	Supersample int            // render at S× then downscale; 1 disables
	Workers     int            // encoder goroutines
	Background  *mathutil.Vec3 // frame background; nil keeps the renderer default (white)
}

// Result holds the outcome of exporting one frame.
type Result struct {
	Frame    int
	File     string
	Rotation int // color rotation step (0–2) the frame was rendered with
	Success  bool
	Error    string
}

// Run renders cfg.Frames frames of the model, rotating its colors on the
// configured cadence, and encodes each frame through a worker pool.
// Rendering stays on the calling goroutine so a rotation never overlaps
// an in-progress pass; only encoding fans out.
func Run(model *raster.TriangleModel, cfg Config) ([]Result, error) {
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	r, err := raster.NewRenderer(model, cfg.Width*ss, cfg.Height*ss)
	if err != nil {
		return nil, err
	}
	if cfg.Background != nil {
		r.SetBackground(*cfg.Background)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("export: output dir: %w", err)
	}

	total := cfg.Frames
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

	type job struct {
		frame    int
		rotation int
		img      *image.NRGBA
	}

	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.frame] = writeFrame(cfg, j.frame, j.rotation, j.img)
				processed.Add(1)
			}
		}()
	}

	rotation := 0
	for f := 0; f < total; f++ {
		if cfg.RotateEvery > 0 && f > 0 && f%cfg.RotateEvery == 0 {
			model.RotateColors()
			rotation = (rotation + 1) % 3
		}

		r.Render()
		img := r.Buffer().Image()
		if ss > 1 {
			img = postprocess.Downsample(img, cfg.Width, cfg.Height)
		}

		jobs <- job{frame: f, rotation: rotation, img: img}
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results, nil
}

func writeFrame(cfg Config, frame, rotation int, img *image.NRGBA) Result {
	name := fmt.Sprintf("frame-%04d.%s", frame, cfg.Format.Ext())
	outPath := filepath.Join(cfg.OutputDir, name)

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, File: name, Rotation: rotation, Error: err.Error()}
	}
	defer f.Close()

	if err := Encode(f, img, cfg.Format); err != nil {
		return Result{Frame: frame, File: name, Rotation: rotation, Error: fmt.Sprintf("%s encode: %v", cfg.Format, err)}
	}

	return Result{Frame: frame, File: name, Rotation: rotation, Success: true}
}
