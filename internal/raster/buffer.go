package raster

import "image"

// FrameBuffer holds the float render target as a flat slice for cache
// locality. Pix is RGB interleaved, row-major with row 0 at the top,
// len = W*H*3. It is allocated once and fully overwritten every render
// pass.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []float64
}

// NewFrameBuffer allocates a zeroed float field.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]float64, w*h*3),
	}
}

// Bytes quantizes the field to 8-bit channels and returns a fresh
// W*H*3 buffer that never aliases Pix, so the caller may keep it across
// later render passes. Each channel is scaled by 255, clamped to
// [0, 255], then truncated toward zero; out-of-range floats clamp,
// never wrap.
func (fb *FrameBuffer) Bytes() []uint8 {
	out := make([]uint8, len(fb.Pix))
	for i, v := range fb.Pix {
		out[i] = quantize(v)
	}
	return out
}

// Image copies the field into a fresh fully opaque NRGBA, the form the
// image encoders and x/image scaling consume.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		src := y * fb.Width * 3
		dst := y * img.Stride
		for x := 0; x < fb.Width; x++ {
			img.Pix[dst] = quantize(fb.Pix[src])
			img.Pix[dst+1] = quantize(fb.Pix[src+1])
			img.Pix[dst+2] = quantize(fb.Pix[src+2])
			img.Pix[dst+3] = 255
			src += 3
			dst += 4
		}
	}
	return img
}

func quantize(v float64) uint8 {
	s := v * 255
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}
