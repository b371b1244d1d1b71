package pipeline

import "math"

const (
	// minRangeSpan keeps the unit reference vectors comfortably visible
	// even when all geometry collapses toward the origin.
	minRangeSpan = 2.2

	// rangePadding is the fraction of the span added on each side.
	rangePadding = 0.05
)

// AxisRange is the shared, square coordinate range applied to every panel
// so cross-panel comparison is visually honest.
type AxisRange struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns the x extent.
func (r AxisRange) Width() float64 { return r.XMax - r.XMin }

// Height returns the y extent.
func (r AxisRange) Height() float64 { return r.YMax - r.YMin }

// ComputeRange scans the geometry of all active panels and returns one
// square, padded range covering the union of their unmapped points, mapped
// points and mapped reference arrow heads (which can extend past the shape
// outline, e.g. under a stretch). Returns nil when there are no points at
// all; callers should fall back to DefaultRange.
func ComputeRange(geoms []Geometry) *AxisRange {
	var (
		minX, maxX float64
		minY, maxY float64
		seen       bool
	)

	consider := func(x, y float64) {
		if !seen {
			minX, maxX = x, x
			minY, maxY = y, y
			seen = true
			return
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for _, g := range geoms {
		for _, p := range g.UnmappedPoints {
			consider(p.X, p.Y)
		}
		for _, p := range g.MappedPoints {
			consider(p.X, p.Y)
		}
		for _, a := range g.MappedRefArrows {
			consider(a.X1, a.Y1)
		}
	}

	if !seen {
		return nil
	}

	span := math.Max(maxX-minX, maxY-minY)
	span = math.Max(span, minRangeSpan)

	// Centers come from the raw extents, not the floored span.
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	pad := rangePadding * span
	half := span/2 + pad

	return &AxisRange{
		XMin: cx - half, XMax: cx + half,
		YMin: cy - half, YMax: cy + half,
	}
}

// DefaultRange is the fallback applied when ComputeRange has no points:
// the floor span centred on the origin with standard padding.
func DefaultRange() AxisRange {
	half := minRangeSpan/2 + rangePadding*minRangeSpan
	return AxisRange{XMin: -half, XMax: half, YMin: -half, YMax: half}
}
