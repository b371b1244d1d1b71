// Package shape generates boundary points for the reference shapes a panel
// can display.
package shape

import (
	"math"

	"lineon/pkg/geometry"
)

// Kind identifies a reference shape.
type Kind string

const (
	Circle  Kind = "circle"
	Square  Kind = "square"
	Hexagon Kind = "hexagon"
)

// Kinds lists all shapes in menu order.
func Kinds() []Kind {
	return []Kind{Circle, Square, Hexagon}
}

// Label returns the shape's display name.
func (k Kind) Label() string {
	switch k {
	case Square:
		return "Square"
	case Hexagon:
		return "Hexagon"
	}
	return "Circle"
}

// MinPoints returns the minimum point count for the shape (its corner
// count for polygons).
func (k Kind) MinPoints() int {
	switch k {
	case Square:
		return 4
	case Hexagon:
		return 6
	}
	return 1
}

// Sample returns n ordered boundary points for the shape. The sequence is
// open: the closing duplicate of point 0 is left to the outline renderer.
// Counts below the shape's minimum are clamped up to it. Unrecognized
// kinds sample as a circle.
func Sample(kind Kind, n int) []geometry.Point2D {
	switch kind {
	case Square:
		return samplePolygon(squareCorners(), n)
	case Hexagon:
		return samplePolygon(polygonCorners(6), n)
	}
	return sampleCircle(n)
}

// sampleCircle returns n points evenly spaced on the unit circle starting
// at angle 0. The point at 2π is omitted since it coincides with angle 0.
func sampleCircle(n int) []geometry.Point2D {
	if n < 1 {
		n = 1
	}
	points := make([]geometry.Point2D, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geometry.Point2D{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return points
}

// samplePolygon distributes n points across the polygon's edges: n/k per
// edge with the first n%k edges receiving one extra, each edge
// interpolated from its start corner and excluding its end corner.
func samplePolygon(corners []geometry.Point2D, n int) []geometry.Point2D {
	k := len(corners)
	if n < k {
		n = k
	}

	perEdge := n / k
	remaining := n % k

	points := make([]geometry.Point2D, 0, n)
	for i := 0; i < k; i++ {
		start := corners[i]
		end := corners[(i+1)%k]

		onEdge := perEdge
		if i < remaining {
			onEdge++
		}
		for j := 0; j < onEdge; j++ {
			t := float64(j) / float64(onEdge)
			points = append(points, start.Add(end.Sub(start).Scale(t)))
		}
	}
	return points
}

// squareCorners returns the unit square corners in winding order.
func squareCorners() []geometry.Point2D {
	return []geometry.Point2D{
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	}
}

// polygonCorners returns k corners on the unit circle starting at angle 0.
func polygonCorners(k int) []geometry.Point2D {
	corners := make([]geometry.Point2D, k)
	for i := 0; i < k; i++ {
		theta := 2 * math.Pi * float64(i) / float64(k)
		corners[i] = geometry.Point2D{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return corners
}
