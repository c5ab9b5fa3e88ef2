package raster

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"tri-renderer/internal/mathutil"
)

// ErrInvalidDimensions reports a non-positive width or height.
var ErrInvalidDimensions = errors.New("dimensions must be positive")

// Renderer rasterizes one TriangleModel into an owned FrameBuffer.
// Render may be called any number of times; the buffer is reused and
// fully overwritten each pass. Pixel row i, column j maps to normalized
// device coordinates x = (j/width)*2 - 1, y = 1 - (i/height)*2, so row 0
// is the top of the image and y grows upward.
type Renderer struct {
	model   *TriangleModel
	fb      *FrameBuffer
	bg      mathutil.Vec3
	aa      AAConfig
	workers int
}

// NewRenderer builds a renderer for the given pixel grid. Width or
// height ≤ 0 fails with ErrInvalidDimensions and performs no allocation.
func NewRenderer(model *TriangleModel, width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Renderer{
		model:   model,
		fb:      NewFrameBuffer(width, height),
		bg:      mathutil.Vec3{1, 1, 1},
		aa:      NewAAConfig(width, height),
		workers: runtime.NumCPU(),
	}, nil
}

// SetBackground replaces the solid color behind the triangle
// (white by default). Takes effect on the next render pass.
func (r *Renderer) SetBackground(bg mathutil.Vec3) {
	r.bg = bg
}

// Background returns the current background color.
func (r *Renderer) Background() mathutil.Vec3 {
	return r.bg
}

// SetWorkers sets how many goroutines share the row loop; n <= 1 renders
// on the calling goroutine. Output is identical for any worker count.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

// Buffer returns the renderer-owned float field.
func (r *Renderer) Buffer() *FrameBuffer {
	return r.fb
}

// Frame returns the current frame as a fresh byte image, W*H*3,
// row-major top-down, RGB channel order.
func (r *Renderer) Frame() []uint8 {
	return r.fb.Bytes()
}

// RotateColors advances the model's vertex colors one step.
func (r *Renderer) RotateColors() {
	r.model.RotateColors()
}

// Render overwrites the frame buffer with the current model state.
//
// This is the HOT PATH — the pixel loop allocates nothing. All
// per-triangle terms (edge deltas, inverse determinant) are hoisted out
// of the loop; the per-pixel work is two fused multiply-adds per weight,
// the margin test, and the smoothstep blend.
func (r *Renderer) Render() {
	v := r.model.Vertices()
	c := r.model.Colors() // snapshot under the model lock

	x0, y0 := v[0][0], v[0][1]
	x1, y1 := v[1][0], v[1][1]
	x2, y2 := v[2][0], v[2][1]

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -degenerateEps && det < degenerateEps {
		// Collinear vertices: zero screen area, nothing to cover
		r.fillBackground()
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	fb := r.fb
	w, h := fb.Width, fb.Height
	bg := r.bg
	aa := r.aa

	rows := func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			y := 1.0 - (float64(i)/float64(h))*2.0
			dsy := y - y2
			rowOff := i * w * 3
			for j := 0; j < w; j++ {
				x := (float64(j)/float64(w))*2.0 - 1.0
				dsx := x - x2

				w0 := (dy12*dsx + dx21*dsy) * invDet
				w1 := (dy20*dsx + dx02*dsy) * invDet
				w2 := 1.0 - w0 - w1

				minBary := w0
				if w1 < minBary {
					minBary = w1
				}
				if w2 < minBary {
					minBary = w2
				}

				idx := rowOff + j*3
				if minBary < -aa.Margin {
					fb.Pix[idx] = bg[0]
					fb.Pix[idx+1] = bg[1]
					fb.Pix[idx+2] = bg[2]
					continue
				}

				alpha := aa.Blend(minBary)
				inv := 1.0 - alpha
				fb.Pix[idx] = (w0*c[0][0]+w1*c[1][0]+w2*c[2][0])*alpha + bg[0]*inv
				fb.Pix[idx+1] = (w0*c[0][1]+w1*c[1][1]+w2*c[2][1])*alpha + bg[1]*inv
				fb.Pix[idx+2] = (w0*c[0][2]+w1*c[1][2]+w2*c[2][2])*alpha + bg[2]*inv
			}
		}
	}

	if r.workers <= 1 || h < r.workers*2 {
		rows(0, h)
		return
	}

	// Rows are independent, so split them across workers.
	chunk := (h + r.workers - 1) / r.workers
	var wg sync.WaitGroup
	for start := 0; start < h; start += chunk {
		end := start + chunk
		if end > h {
			end = h
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			rows(s, e)
		}(start, end)
	}
	wg.Wait()
}

func (r *Renderer) fillBackground() {
	pix := r.fb.Pix
	for i := 0; i < len(pix); i += 3 {
		pix[i] = r.bg[0]
		pix[i+1] = r.bg[1]
		pix[i+2] = r.bg[2]
	}
}
