package raster

import "testing"

func TestBytesQuantization(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half truncates", 0.5, 127},
		{"near one truncates", 0.999, 254},
		{"negative clamps", -0.5, 0},
		{"above one clamps", 2.0, 255},
		{"far out clamps", 1e6, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFrameBuffer(1, 1)
			fb.Pix[0] = tt.in
			if got := fb.Bytes()[0]; got != tt.want {
				t.Errorf("quantize(%g) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestBytesDoesNotAlias(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	for i := range fb.Pix {
		fb.Pix[i] = 0.5
	}

	a := fb.Bytes()
	b := fb.Bytes()
	if &a[0] == &b[0] {
		t.Fatal("Bytes returned the same buffer twice")
	}

	// Mutating the export must not touch the float field,
	// and a later field overwrite must not touch the export.
	a[0] = 99
	if fb.Pix[0] != 0.5 {
		t.Errorf("export write leaked into the field: %g", fb.Pix[0])
	}
	fb.Pix[0] = 1.0
	if b[0] != 127 {
		t.Errorf("field write leaked into the export: %d", b[0])
	}
}

func TestImageDimensionsAndAlpha(t *testing.T) {
	fb := NewFrameBuffer(5, 4)
	fb.Pix[0], fb.Pix[1], fb.Pix[2] = 1, 0, 0

	img := fb.Image()
	if got := img.Bounds(); got.Dx() != 5 || got.Dy() != 4 {
		t.Fatalf("bounds = %v, want 5x4", got)
	}
	r, g, b, a := img.NRGBAAt(0, 0).R, img.NRGBAAt(0, 0).G, img.NRGBAAt(0, 0).B, img.NRGBAAt(0, 0).A
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("pixel (0,0) = (%d, %d, %d, %d), want opaque red", r, g, b, a)
	}
}
