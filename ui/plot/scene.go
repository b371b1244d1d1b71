package plot

import (
	"image/color"
	"math"

	"lineon/internal/pipeline"
	"lineon/pkg/geometry"
)

// Arrow head dimensions in world units. Mapped heads are slightly larger
// than unmapped ones so overlapping arrows stay distinguishable, and the
// reference arrows are larger still.
const (
	unmappedHeadLen  = 0.05
	mappedHeadLen    = 0.06
	referenceHeadLen = 0.075

	unmappedHeadHalfWidth  = 0.04
	mappedHeadHalfWidth    = 0.045
	referenceHeadHalfWidth = 0.055
)

// Line is a scene segment in world coordinates.
type Line struct {
	X0, Y0, X1, Y1 float64
	Color          color.RGBA
}

// Triangle is a filled scene triangle in world coordinates (arrow heads).
type Triangle struct {
	P     [3]geometry.Point2D
	Color color.RGBA
}

// Marker is a small filled disc at a world position (arrow tails).
type Marker struct {
	P     geometry.Point2D
	Color color.RGBA
}

// Scene is the drawable content of one panel in world coordinates.
// Elements are drawn in slice order, so later appends paint on top.
type Scene struct {
	Lines     []Line
	Triangles []Triangle
	Markers   []Marker
}

// BuildScene assembles a panel's scene from its derived geometry, honoring
// the panel's display toggles. Unmapped elements are appended before mapped
// ones so the mapped shape always paints on top.
func BuildScene(g pipeline.Geometry, opts pipeline.DisplayOptions) *Scene {
	s := &Scene{}

	if opts.UnmappedOutline {
		s.appendOutline(g.UnmappedPoints, UnmappedOutline)
	}
	if opts.MappedOutline {
		s.appendOutline(g.MappedPoints, MappedOutline)
	}
	if opts.UnmappedArrows {
		for _, a := range g.UnmappedArrows {
			s.appendArrow(a, unmappedHeadLen, unmappedHeadHalfWidth, UnmappedArrow)
		}
	}
	if opts.MappedArrows {
		for _, a := range g.MappedArrows {
			s.appendArrow(a, mappedHeadLen, mappedHeadHalfWidth, MappedArrow)
		}
	}
	if opts.UnmappedReference {
		s.appendReferencePair(g.UnmappedRefArrows)
	}
	if opts.MappedReference {
		s.appendReferencePair(g.MappedRefArrows)
	}

	return s
}

// appendOutline closes the point loop back to its first point.
func (s *Scene) appendOutline(points []geometry.Point2D, col color.RGBA) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		s.Lines = append(s.Lines, Line{X0: p1.X, Y0: p1.Y, X1: p2.X, Y1: p2.Y, Color: col})
	}
}

// appendReferencePair draws the x basis arrow green and the y basis arrow
// blue, matching the axis they started on.
func (s *Scene) appendReferencePair(arrows []geometry.Arrow) {
	cols := [...]color.RGBA{XReference, YReference}
	for i, a := range arrows {
		s.appendArrow(a, referenceHeadLen, referenceHeadHalfWidth, cols[i%len(cols)])
	}
}

// appendArrow emits a shaft, a triangular head and, for arrows not anchored
// at the origin, a tail marker. Zero-length arrows produce nothing.
func (s *Scene) appendArrow(a geometry.Arrow, headLen, halfWidth float64, col color.RGBA) {
	length := a.Length()
	if length == 0 {
		return
	}

	angle := a.Angle()
	dirX, dirY := math.Cos(angle), math.Sin(angle)

	// The shaft stops where the head begins; tiny arrows become all head.
	shaftLen := length - headLen
	if shaftLen < 0 {
		shaftLen = 0
	}
	baseX := a.X0 + dirX*shaftLen
	baseY := a.Y0 + dirY*shaftLen

	if shaftLen > 0 {
		s.Lines = append(s.Lines, Line{X0: a.X0, Y0: a.Y0, X1: baseX, Y1: baseY, Color: col})
	}

	// Head triangle: tip at the arrow head, base perpendicular to the shaft.
	perpX, perpY := -dirY, dirX
	s.Triangles = append(s.Triangles, Triangle{
		P: [3]geometry.Point2D{
			{X: a.X1, Y: a.Y1},
			{X: baseX + perpX*halfWidth, Y: baseY + perpY*halfWidth},
			{X: baseX - perpX*halfWidth, Y: baseY - perpY*halfWidth},
		},
		Color: col,
	})

	if a.X0 != 0 || a.Y0 != 0 {
		s.Markers = append(s.Markers, Marker{P: a.Tail(), Color: col})
	}
}
