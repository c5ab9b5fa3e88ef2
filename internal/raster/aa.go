package raster

import "tri-renderer/internal/mathutil"

// AAConfig holds precomputed anti-aliasing parameters for a render pass.
type AAConfig struct {
	Margin   float64 // barycentric margin below which a pixel is pure background
	InvScale float64 // smoothstep upper edge, 1 / (max(w,h) * 0.5)
}

// NewAAConfig ties the fringe width to pixel density so edges look
// equally smooth at any output resolution.
func NewAAConfig(width, height int) AAConfig {
	scale := float64(width) * 0.5
	if height > width {
		scale = float64(height) * 0.5
	}
	return AAConfig{
		Margin:   0.02,
		InvScale: 1.0 / scale,
	}
}

// Blend returns the coverage factor for the smallest barycentric weight:
// 0 outside the edge, 1 once the point is a full fringe width inside.
func (aa AAConfig) Blend(minBary float64) float64 {
	return mathutil.Smoothstep(0, aa.InvScale, minBary)
}

// Barycentric returns the weights of the point (x, y) against the three
// vertices, solving the 2×2 system from the edge vectors v1-v0 and
// v2-v0. The weights sum to 1 by construction. ok is false when the
// triangle is degenerate (collinear vertices, near-zero denominator).
func Barycentric(v [3]mathutil.Vec2, x, y float64) (u, w1, w2 float64, ok bool) {
	e0 := v[1].Sub(v[0])
	e1 := v[2].Sub(v[0])
	e2 := mathutil.Vec2{x, y}.Sub(v[0])

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom > -degenerateEps && denom < degenerateEps {
		return 0, 0, 0, false
	}
	w1 = (d11*d20 - d01*d21) / denom
	w2 = (d00*d21 - d01*d20) / denom
	u = 1.0 - w1 - w2
	return u, w1, w2, true
}

// degenerateEps bounds the barycentric determinant below which a
// triangle has no meaningful interior.
const degenerateEps = 1e-12
