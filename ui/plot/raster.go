package plot

import (
	"image"
	"image/color"
	"math"
	"sort"

	"lineon/internal/pipeline"
	"lineon/pkg/geometry"
)

const (
	lineThickness   = 2
	markerRadiusPx  = 3
	zeroLineDashLen = 4
)

// viewTransform maps world coordinates into a pixel rectangle, preserving
// aspect ratio. The shared range is square, so a uniform scale centred in
// the viewport keeps circles circular regardless of panel size.
type viewTransform struct {
	xMin, yMin float64
	scale      float64
	offX, offY float64
	height     int
}

func newViewTransform(r pipeline.AxisRange, w, h int) viewTransform {
	scale := math.Min(float64(w)/r.Width(), float64(h)/r.Height())
	return viewTransform{
		xMin:   r.XMin,
		yMin:   r.YMin,
		scale:  scale,
		offX:   (float64(w) - r.Width()*scale) / 2,
		offY:   (float64(h) - r.Height()*scale) / 2,
		height: h,
	}
}

// pixel converts a world position to image coordinates, flipping y so the
// world's positive y points up on screen.
func (t viewTransform) pixel(x, y float64) (int, int) {
	px := int(math.Round((x-t.xMin)*t.scale + t.offX))
	py := t.height - 1 - int(math.Round((y-t.yMin)*t.scale+t.offY))
	return px, py
}

// RenderImage rasterizes a scene into a fresh RGBA image: dark background,
// dashed zero lines, then the scene's lines, arrow heads and tail markers
// in that order.
func RenderImage(s *Scene, r pipeline.AxisRange, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, Background)

	t := newViewTransform(r, w, h)
	drawZeroLines(img, r, t)

	for _, line := range s.Lines {
		x1, y1 := t.pixel(line.X0, line.Y0)
		x2, y2 := t.pixel(line.X1, line.Y1)
		drawLine(img, x1, y1, x2, y2, line.Color, lineThickness)
	}
	for _, tri := range s.Triangles {
		fillTriangle(img, tri, t)
	}
	for _, m := range s.Markers {
		cx, cy := t.pixel(m.P.X, m.P.Y)
		fillDisc(img, cx, cy, markerRadiusPx, m.Color)
	}

	return img
}

func fill(img *image.RGBA, col color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

// drawZeroLines marks the x and y axes with dashed lines when they fall
// inside the visible range.
func drawZeroLines(img *image.RGBA, r pipeline.AxisRange, t viewTransform) {
	b := img.Bounds()

	if r.YMin <= 0 && 0 <= r.YMax {
		_, py := t.pixel(0, 0)
		if py >= b.Min.Y && py < b.Max.Y {
			for x := b.Min.X; x < b.Max.X; x++ {
				if (x/zeroLineDashLen)%2 == 0 {
					img.Set(x, py, ZeroLine)
				}
			}
		}
	}
	if r.XMin <= 0 && 0 <= r.XMax {
		px, _ := t.pixel(0, 0)
		if px >= b.Min.X && px < b.Max.X {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				if (y/zeroLineDashLen)%2 == 0 {
					img.Set(px, y, ZeroLine)
				}
			}
		}
	}
}

// drawLine draws a thick line using Bresenham's algorithm with bounds
// checking on every pixel.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := img.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					img.Set(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillTriangle fills an arrow head with a scanline pass over its pixel
// bounding box.
func fillTriangle(img *image.RGBA, tri Triangle, t viewTransform) {
	var pts [3]geometry.Point2D
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for i, p := range tri.P {
		px, py := t.pixel(p.X, p.Y)
		pts[i] = geometry.Point2D{X: float64(px), Y: float64(py)}
		minY = math.Min(minY, pts[i].Y)
		maxY = math.Max(maxY, pts[i].Y)
	}

	bounds := img.Bounds()
	for y := int(minY); y <= int(maxY); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}

		var xs []float64
		for i := 0; i < 3; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%3]
			if (p1.Y <= float64(y) && p2.Y > float64(y)) ||
				(p2.Y <= float64(y) && p1.Y > float64(y)) {
				f := (float64(y) - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+f*(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i]); x <= int(xs[i+1]); x++ {
				if x >= bounds.Min.X && x < bounds.Max.X {
					img.Set(x, y, tri.Color)
				}
			}
		}
	}
}

// fillDisc draws a small filled circle (arrow tail marker).
func fillDisc(img *image.RGBA, cx, cy, radius int, col color.RGBA) {
	bounds := img.Bounds()
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				img.Set(x, y, col)
			}
		}
	}
}
