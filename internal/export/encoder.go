package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format identifies an output image codec.
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
	FormatTGA  Format = "tga"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatWebP:
		return FormatWebP, nil
	case FormatPNG:
		return FormatPNG, nil
	case FormatTGA:
		return FormatTGA, nil
	}
	return "", fmt.Errorf("export: unknown format %q (webp, png, tga)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("export: unknown format %q", format)
}
