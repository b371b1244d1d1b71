package plot

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lineon/internal/pipeline"
)

// Export dimensions. The plot area stays square; the header strip above it
// carries the transform label and matrix readout.
const (
	ExportPlotSize     = 800
	exportHeaderHeight = 56
	exportMarginX      = 10
	exportLineHeight   = 16
)

// RenderExport renders a scene into a standalone image with a text header,
// suitable for saving to disk.
func RenderExport(s *Scene, r pipeline.AxisRange, header []string) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, ExportPlotSize, exportHeaderHeight+ExportPlotSize))
	fill(out, Background)

	plotArea := RenderImage(s, r, ExportPlotSize, ExportPlotSize)
	target := image.Rect(0, exportHeaderHeight, ExportPlotSize, exportHeaderHeight+ExportPlotSize)
	draw.Draw(out, target, plotArea, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(UnmappedOutline),
		Face: basicfont.Face7x13,
	}
	y := exportLineHeight
	for _, line := range header {
		for _, sub := range strings.Split(line, "\n") {
			drawer.Dot = fixed.P(exportMarginX, y)
			drawer.DrawString(sub)
			y += exportLineHeight
		}
	}

	return out
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
