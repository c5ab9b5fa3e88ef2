package export

import (
	"bytes"
	"image/png"
	"testing"

	"tri-renderer/internal/raster"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"webp", FormatWebP, false},
		{"png", FormatPNG, false},
		{"tga", FormatTGA, false},
		{"PNG", FormatPNG, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func testFrame(t *testing.T, w, h int) *raster.FrameBuffer {
	t.Helper()
	r, err := raster.NewRenderer(raster.DefaultTriangle(), w, h)
	if err != nil {
		t.Fatal(err)
	}
	r.Render()
	return r.Buffer()
}

func TestEncodeAllFormats(t *testing.T) {
	img := testFrame(t, 32, 24).Image()

	for _, format := range []Format{FormatWebP, FormatPNG, FormatTGA} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("empty output")
			}
		})
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := testFrame(t, 32, 24).Image()

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatPNG); err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("decoded bounds = %v, want 32x24", b)
	}

	// Top-left corner is background white.
	r, g, bl, _ := decoded.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Errorf("corner = (%#x, %#x, %#x), want white", r, g, bl)
	}
}
