// Package plot builds and rasterizes the panel scenes: shape outlines,
// point arrows and basis reference arrows in a shared coordinate range.
package plot

import "image/color"

// Panel palette. Unmapped geometry is neutral, mapped geometry is red, and
// the basis reference arrows use green for x and blue for y.
var (
	Background = color.RGBA{R: 34, G: 34, B: 34, A: 255}
	ZeroLine   = color.RGBA{R: 70, G: 70, B: 70, A: 255}

	UnmappedArrow   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	MappedArrow     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	UnmappedOutline = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	MappedOutline   = color.RGBA{R: 255, G: 100, B: 100, A: 255}

	XReference = color.RGBA{R: 50, G: 200, B: 50, A: 255}
	YReference = color.RGBA{R: 50, G: 50, B: 200, A: 255}
)
