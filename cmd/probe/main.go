package main

import (
	"flag"
	"fmt"
	"os"

	"tri-renderer/internal/raster"
)

// probe prints the full rasterization math for a single pixel of the
// reference triangle: NDC mapping, barycentric weights, coverage and the
// final blended color. Handy when checking edge behavior by hand.
func main() {
	width := flag.Int("width", 800, "Frame width in pixels")
	height := flag.Int("height", 600, "Frame height in pixels")
	col := flag.Int("x", 400, "Pixel column (0-indexed)")
	row := flag.Int("y", 120, "Pixel row (0-indexed, row 0 is the top)")
	rotations := flag.Int("rotations", 0, "Color rotation steps to apply first")

	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid dimensions %dx%d\n", *width, *height)
		os.Exit(1)
	}
	if *col < 0 || *col >= *width || *row < 0 || *row >= *height {
		fmt.Fprintf(os.Stderr, "Error: pixel (%d, %d) outside %dx%d\n", *col, *row, *width, *height)
		os.Exit(1)
	}

	model := raster.DefaultTriangle()
	for i := 0; i < *rotations; i++ {
		model.RotateColors()
	}

	v := model.Vertices()
	c := model.Colors()

	x := (float64(*col)/float64(*width))*2.0 - 1.0
	y := 1.0 - (float64(*row)/float64(*height))*2.0
	fmt.Printf("Pixel (%d, %d) of %dx%d → NDC (%.4f, %.4f)\n", *col, *row, *width, *height, x, y)

	u, w1, w2, ok := raster.Barycentric(v, x, y)
	if !ok {
		fmt.Println("Degenerate triangle: background everywhere")
		return
	}
	fmt.Printf("Barycentric: u=%.4f v=%.4f w=%.4f (sum %.6f)\n", u, w1, w2, u+w1+w2)

	minBary := u
	if w1 < minBary {
		minBary = w1
	}
	if w2 < minBary {
		minBary = w2
	}

	aa := raster.NewAAConfig(*width, *height)
	fmt.Printf("minBary: %.5f (margin %.3f, fringe %.5f)\n", minBary, aa.Margin, aa.InvScale)

	if minBary < -aa.Margin {
		fmt.Println("Outside: background pixel")
		return
	}

	alpha := aa.Blend(minBary)
	switch {
	case alpha <= 0:
		fmt.Printf("Coverage: %.4f (background)\n", alpha)
	case alpha >= 1:
		fmt.Printf("Coverage: %.4f (full interior)\n", alpha)
	default:
		fmt.Printf("Coverage: %.4f (edge fringe)\n", alpha)
	}

	tri := c[0].Scale(u).Add(c[1].Scale(w1)).Add(c[2].Scale(w2))
	bg := [3]float64{1, 1, 1}
	fmt.Printf("Interpolated: (%.4f, %.4f, %.4f)\n", tri[0], tri[1], tri[2])
	fmt.Printf("Final:        (%.4f, %.4f, %.4f)\n",
		tri[0]*alpha+bg[0]*(1-alpha),
		tri[1]*alpha+bg[1]*(1-alpha),
		tri[2]*alpha+bg[2]*(1-alpha))
}
