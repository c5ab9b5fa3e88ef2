package raster

import (
	"errors"
	"sort"
	"testing"

	"tri-renderer/internal/mathutil"
)

func TestNewTriangleModelRejectsBadColors(t *testing.T) {
	verts := DefaultTriangle().Vertices()

	tests := []struct {
		name   string
		colors [3]mathutil.Vec3
		wantOK bool
	}{
		{"reference colors", [3]mathutil.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true},
		{"all gray", [3]mathutil.Vec3{{0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}}, true},
		{"channel above one", [3]mathutil.Vec3{{1.5, 0, 0}, {0, 1, 0}, {0, 0, 1}}, false},
		{"negative channel", [3]mathutil.Vec3{{1, 0, 0}, {0, -0.1, 0}, {0, 0, 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewTriangleModel(verts, tt.colors)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Colors() != tt.colors {
					t.Errorf("colors not stored: %v", m.Colors())
				}
				return
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Fatalf("want ErrInvalidColor, got %v", err)
			}
		})
	}
}

func TestRotateColorsCycle(t *testing.T) {
	m := DefaultTriangle()
	orig := m.Colors()

	m.RotateColors()
	got := m.Colors()
	want := [3]mathutil.Vec3{orig[2], orig[0], orig[1]}
	if got != want {
		t.Fatalf("after one rotation: %v, want %v", got, want)
	}

	m.RotateColors()
	m.RotateColors()
	if m.Colors() != orig {
		t.Errorf("three rotations are not the identity: %v", m.Colors())
	}
}

func TestRotateColorsPreservesMultiset(t *testing.T) {
	m := DefaultTriangle()
	before := sortedColors(m.Colors())

	for i := 0; i < 5; i++ {
		m.RotateColors()
		after := sortedColors(m.Colors())
		if after != before {
			t.Fatalf("rotation %d changed the color multiset: %v", i+1, after)
		}
	}
}

func sortedColors(c [3]mathutil.Vec3) [3]mathutil.Vec3 {
	s := c[:]
	sort.Slice(s, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if s[i][k] != s[j][k] {
				return s[i][k] < s[j][k]
			}
		}
		return false
	})
	return [3]mathutil.Vec3{s[0], s[1], s[2]}
}
