package pipeline

import (
	"lineon/internal/linmap"
	"lineon/internal/shape"
	"lineon/pkg/geometry"
)

// Geometry is the fully derived drawable geometry for one panel. It is
// rebuilt from scratch on every recompute and never mutated afterwards.
type Geometry struct {
	UnmappedPoints []geometry.Point2D
	MappedPoints   []geometry.Point2D

	UnmappedArrows []geometry.Arrow
	MappedArrows   []geometry.Arrow

	// Reference arrows show the basis vectors (1,0) and (0,1); they are
	// origin-anchored in every view mode.
	UnmappedRefArrows []geometry.Arrow
	MappedRefArrows   []geometry.Arrow
}

// referenceVectors returns the canonical basis vectors.
func referenceVectors() []geometry.Point2D {
	return []geometry.Point2D{{X: 1, Y: 0}, {X: 0, Y: 1}}
}

// Prepare samples the panel's reference shape, maps it through the
// effective matrix and builds arrow geometry for the panel's view mode.
//
// In the difference view the outline point sets intentionally remain the
// raw unmapped/mapped shapes rather than following the displacement
// arrows; the original behaves the same way.
func Prepare(m linmap.Matrix, s Settings) Geometry {
	unmapped := shape.Sample(s.Shape, s.PointCount)

	mapped := make([]geometry.Point2D, len(unmapped))
	for i, p := range unmapped {
		mapped[i] = m.Apply(p)
	}

	g := Geometry{
		UnmappedPoints: unmapped,
		UnmappedArrows: originArrows(unmapped),
	}

	switch s.View {
	case ViewDifference:
		g.MappedPoints = mapped
		g.MappedArrows = make([]geometry.Arrow, len(unmapped))
		for i := range unmapped {
			g.MappedArrows[i] = geometry.NewArrow(
				unmapped[i].X, unmapped[i].Y, mapped[i].X, mapped[i].Y)
		}
	case ViewNormal:
		// Arrows start at the unmapped points and extend by the mapped
		// vector; the mapped outline follows those extended tips.
		tips := make([]geometry.Point2D, len(unmapped))
		g.MappedArrows = make([]geometry.Arrow, len(unmapped))
		for i := range unmapped {
			tips[i] = unmapped[i].Add(mapped[i])
			g.MappedArrows[i] = geometry.NewArrow(
				unmapped[i].X, unmapped[i].Y, tips[i].X, tips[i].Y)
		}
		g.MappedPoints = tips
	default: // ViewMap
		g.MappedPoints = mapped
		g.MappedArrows = originArrows(mapped)
	}

	refs := referenceVectors()
	mappedRefs := make([]geometry.Point2D, len(refs))
	for i, r := range refs {
		mappedRefs[i] = m.Apply(r)
	}
	g.UnmappedRefArrows = originArrows(refs)
	g.MappedRefArrows = originArrows(mappedRefs)

	return g
}

// EffectiveMatrix derives the matrix a panel actually renders: operation
// first, then scaling, never the reverse.
func EffectiveMatrix(base linmap.Matrix, s Settings) linmap.Matrix {
	return linmap.ApplyScaling(linmap.ApplyOperation(base, s.Operation), s.Scaling)
}

func originArrows(points []geometry.Point2D) []geometry.Arrow {
	arrows := make([]geometry.Arrow, len(points))
	for i, p := range points {
		arrows[i] = geometry.FromOrigin(p)
	}
	return arrows
}
