package raster

import (
	"errors"
	"fmt"
	"sync"

	"tri-renderer/internal/mathutil"
)

// ErrInvalidColor reports a color channel outside [0, 1] at construction.
var ErrInvalidColor = errors.New("color channel outside [0,1]")

// TriangleModel owns the triangle's 3 vertex positions and 3 vertex
// colors. Vertices are fixed for the lifetime of the model; colors change
// only through RotateColors. Index i of the colors always belongs to
// vertex i.
//
// The mutex serializes RotateColors against the renderer's color
// snapshot, so a render pass never observes a half-rotated set.
type TriangleModel struct {
	mu       sync.Mutex
	vertices [3]mathutil.Vec2 // normalized device coordinates, [-1,1]
	colors   [3]mathutil.Vec3 // RGB, [0,1]
}

// NewTriangleModel builds a model from explicit vertices and colors.
// Color channels outside [0,1] are rejected with ErrInvalidColor.
func NewTriangleModel(vertices [3]mathutil.Vec2, colors [3]mathutil.Vec3) (*TriangleModel, error) {
	for i, c := range colors {
		for ch := 0; ch < 3; ch++ {
			if c[ch] < 0 || c[ch] > 1 {
				return nil, fmt.Errorf("raster: vertex %d channel %d = %g: %w", i, ch, c[ch], ErrInvalidColor)
			}
		}
	}
	return &TriangleModel{vertices: vertices, colors: colors}, nil
}

// DefaultTriangle returns the reference configuration: an upright
// triangle with a red top, green bottom-left and blue bottom-right.
func DefaultTriangle() *TriangleModel {
	return &TriangleModel{
		vertices: [3]mathutil.Vec2{
			{0.0, 0.6},   // top
			{-0.5, -0.3}, // bottom left
			{0.5, -0.3},  // bottom right
		},
		colors: [3]mathutil.Vec3{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	}
}

// Vertices returns the fixed vertex positions.
func (m *TriangleModel) Vertices() [3]mathutil.Vec2 {
	return m.vertices
}

// Colors returns a snapshot of the current color assignment.
func (m *TriangleModel) Colors() [3]mathutil.Vec3 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.colors
}

// RotateColors advances the colors one step around the triangle: vertex 0
// takes vertex 2's color, vertex 1 takes vertex 0's, vertex 2 takes
// vertex 1's. No values change, only their assignment; three rotations
// restore the original.
func (m *TriangleModel) RotateColors() {
	m.mu.Lock()
	m.colors[0], m.colors[1], m.colors[2] = m.colors[2], m.colors[0], m.colors[1]
	m.mu.Unlock()
}
