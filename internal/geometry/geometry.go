// Package geometry maps blur rectangles from the fixed-size client canvas to
// an arbitrary output resolution.
package geometry

import "math"

// The RuneLite fixed-size client renders at 765x503. Blur regions are
// configured against this canvas and scaled to the output resolution at
// render time.
const (
	ReferenceWidth  = 765
	ReferenceHeight = 503
)

// Region is a blur rectangle plus its filter intensity. Amount is a kernel
// parameter, not a pixel measure, and is never scaled.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
	Amount int
}

// Scale maps a reference-canvas region to outputWidth x outputHeight. The
// horizontal and vertical factors are independent, so a non-reference aspect
// ratio distorts the region exactly as it distorts the frame. Every scaled
// value rounds half away from zero to the nearest pixel.
func Scale(region Region, outputWidth, outputHeight int) Region {
	sx := float64(outputWidth) / float64(ReferenceWidth)
	sy := float64(outputHeight) / float64(ReferenceHeight)
	return Region{
		X:      roundScale(region.X, sx),
		Y:      roundScale(region.Y, sy),
		Width:  roundScale(region.Width, sx),
		Height: roundScale(region.Height, sy),
		Amount: region.Amount,
	}
}

func roundScale(value int, factor float64) int {
	return int(math.Round(float64(value) * factor))
}
