package pipeline

import (
	"math"
	"testing"

	"lineon/internal/linmap"
	"lineon/internal/shape"
	"lineon/pkg/geometry"
)

func settingsWith(view ViewMode) Settings {
	s := DefaultSettings()
	s.View = view
	s.PointCount = 4
	return s
}

func TestPrepareIdentityLeavesPointsUnchanged(t *testing.T) {
	g := Prepare(linmap.Identity(), settingsWith(ViewMap))

	if len(g.MappedPoints) != 4 {
		t.Fatalf("mapped point count = %d, want 4", len(g.MappedPoints))
	}
	for i := range g.UnmappedPoints {
		if g.MappedPoints[i] != g.UnmappedPoints[i] {
			t.Fatalf("point %d moved under identity: %v -> %v",
				i, g.UnmappedPoints[i], g.MappedPoints[i])
		}
	}
}

func TestPrepareQuarterTurn(t *testing.T) {
	// 90 degree rotation sends (1,0) to (0,1).
	m := linmap.New(0, -1, 1, 0)
	g := Prepare(m, settingsWith(ViewMap))

	if g.UnmappedPoints[0] != (geometry.Point2D{X: 1, Y: 0}) {
		t.Fatalf("first sampled point = %v, want (1,0)", g.UnmappedPoints[0])
	}
	got := g.MappedPoints[0]
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Fatalf("(1,0) mapped to %v, want (0,1)", got)
	}
}

func TestPrepareMapViewAnchorsArrowsAtOrigin(t *testing.T) {
	m := linmap.New(2, 0, 0, 3)
	g := Prepare(m, settingsWith(ViewMap))

	for i, a := range g.UnmappedArrows {
		if a.X0 != 0 || a.Y0 != 0 {
			t.Fatalf("unmapped arrow %d tail = (%g,%g), want origin", i, a.X0, a.Y0)
		}
		if a.Head() != g.UnmappedPoints[i] {
			t.Fatalf("unmapped arrow %d head = %v, want %v", i, a.Head(), g.UnmappedPoints[i])
		}
	}
	for i, a := range g.MappedArrows {
		if a.X0 != 0 || a.Y0 != 0 {
			t.Fatalf("mapped arrow %d tail = (%g,%g), want origin", i, a.X0, a.Y0)
		}
		if a.Head() != g.MappedPoints[i] {
			t.Fatalf("mapped arrow %d head = %v, want %v", i, a.Head(), g.MappedPoints[i])
		}
	}
}

func TestPrepareDifferenceView(t *testing.T) {
	m := linmap.New(2, 0, 0, 3)
	g := Prepare(m, settingsWith(ViewDifference))

	for i, a := range g.MappedArrows {
		if a.Tail() != g.UnmappedPoints[i] {
			t.Fatalf("difference arrow %d tail = %v, want unmapped point %v",
				i, a.Tail(), g.UnmappedPoints[i])
		}
		want := m.Apply(g.UnmappedPoints[i])
		if a.Head() != want {
			t.Fatalf("difference arrow %d head = %v, want %v", i, a.Head(), want)
		}
	}
	// Outline point sets stay the raw shapes in difference view.
	for i, p := range g.MappedPoints {
		if p != m.Apply(g.UnmappedPoints[i]) {
			t.Fatalf("difference outline point %d = %v, want raw mapped point", i, p)
		}
	}
}

func TestPrepareNormalView(t *testing.T) {
	m := linmap.New(2, 0, 0, 3)
	g := Prepare(m, settingsWith(ViewNormal))

	for i, a := range g.MappedArrows {
		u := g.UnmappedPoints[i]
		tip := u.Add(m.Apply(u))
		if a.Tail() != u {
			t.Fatalf("normal arrow %d tail = %v, want %v", i, a.Tail(), u)
		}
		if a.Head() != tip {
			t.Fatalf("normal arrow %d head = %v, want %v", i, a.Head(), tip)
		}
		// The mapped outline follows the extended tips.
		if g.MappedPoints[i] != tip {
			t.Fatalf("normal outline point %d = %v, want tip %v", i, g.MappedPoints[i], tip)
		}
	}
}

func TestReferenceArrowsAlwaysOriginAnchored(t *testing.T) {
	m := linmap.New(3, 1, -1, 2)
	for _, view := range ViewModes() {
		g := Prepare(m, settingsWith(view))

		if len(g.UnmappedRefArrows) != 2 || len(g.MappedRefArrows) != 2 {
			t.Fatalf("view %s: reference arrow counts %d/%d, want 2/2",
				view, len(g.UnmappedRefArrows), len(g.MappedRefArrows))
		}
		for i, a := range g.UnmappedRefArrows {
			if a.X0 != 0 || a.Y0 != 0 {
				t.Fatalf("view %s: unmapped ref arrow %d not origin-anchored", view, i)
			}
		}
		for i, a := range g.MappedRefArrows {
			if a.X0 != 0 || a.Y0 != 0 {
				t.Fatalf("view %s: mapped ref arrow %d not origin-anchored", view, i)
			}
		}
		if g.MappedRefArrows[0].Head() != m.Apply(geometry.Point2D{X: 1, Y: 0}) {
			t.Fatalf("view %s: mapped x reference head = %v", view, g.MappedRefArrows[0].Head())
		}
	}
}

func TestEffectiveMatrixOrder(t *testing.T) {
	// Operation then scaling: squared then halved is (M*M)/2.
	m := linmap.New(2, 0, 0, 2)
	s := DefaultSettings()
	s.Operation = linmap.OpSquared
	s.Scaling = linmap.ScaleHalved

	if got := EffectiveMatrix(m, s); got != linmap.New(2, 0, 0, 2) {
		t.Fatalf("effective matrix = %v, want [[2 0] [0 2]]", got)
	}
}

func TestComputeRangeFloorAtOrigin(t *testing.T) {
	g := Geometry{UnmappedPoints: []geometry.Point2D{{X: 0, Y: 0}}}
	r := ComputeRange([]Geometry{g})
	if r == nil {
		t.Fatal("range is nil for a single point")
	}

	if math.Abs(r.Width()-r.Height()) > 1e-12 {
		t.Fatalf("range not square: %g x %g", r.Width(), r.Height())
	}
	if r.Width() < minRangeSpan {
		t.Fatalf("range span %g below floor %g", r.Width(), minRangeSpan)
	}
	if math.Abs(r.XMin+r.XMax) > 1e-12 || math.Abs(r.YMin+r.YMax) > 1e-12 {
		t.Fatalf("range not centred on origin: %+v", r)
	}
}

func TestComputeRangeAcrossPanels(t *testing.T) {
	a := Geometry{UnmappedPoints: []geometry.Point2D{{X: -1, Y: -1}}}
	b := Geometry{MappedPoints: []geometry.Point2D{{X: 3, Y: 3}}}
	r := ComputeRange([]Geometry{a, b})
	if r == nil {
		t.Fatal("range is nil")
	}

	// Un-padded centre (1,1), half-span 2, padding 5% of span 4.
	span := 4.0
	pad := rangePadding * span
	if math.Abs(r.XMin-(1-2-pad)) > 1e-12 || math.Abs(r.XMax-(1+2+pad)) > 1e-12 {
		t.Fatalf("x range = [%g, %g]", r.XMin, r.XMax)
	}
	if math.Abs(r.YMin-(1-2-pad)) > 1e-12 || math.Abs(r.YMax-(1+2+pad)) > 1e-12 {
		t.Fatalf("y range = [%g, %g]", r.YMin, r.YMax)
	}
}

func TestComputeRangeIncludesMappedReferenceHeads(t *testing.T) {
	// A large stretch pushes the mapped basis vectors far outside the
	// sampled outline; the range must still cover them.
	g := Geometry{
		UnmappedPoints:  []geometry.Point2D{{X: 0, Y: 0}},
		MappedRefArrows: []geometry.Arrow{{X1: 10, Y1: 0}, {X1: 0, Y1: 1}},
	}
	r := ComputeRange([]Geometry{g})
	if r == nil {
		t.Fatal("range is nil")
	}
	if r.XMax < 10 {
		t.Fatalf("range XMax = %g does not cover mapped reference head at 10", r.XMax)
	}
}

func TestComputeRangeEmpty(t *testing.T) {
	if r := ComputeRange(nil); r != nil {
		t.Fatalf("range for no geometry = %+v, want nil", r)
	}
	if r := ComputeRange([]Geometry{{}}); r != nil {
		t.Fatalf("range for empty geometry = %+v, want nil", r)
	}

	def := DefaultRange()
	if math.Abs(def.Width()-def.Height()) > 1e-12 {
		t.Fatalf("default range not square: %+v", def)
	}
	if def.Width() < minRangeSpan {
		t.Fatalf("default range span %g below floor", def.Width())
	}
}

func TestClampPointCount(t *testing.T) {
	if got := ClampPointCount(1); got != MinPointCount {
		t.Fatalf("clamp(1) = %d", got)
	}
	if got := ClampPointCount(500); got != MaxPointCount {
		t.Fatalf("clamp(500) = %d", got)
	}
	if got := ClampPointCount(12); got != 12 {
		t.Fatalf("clamp(12) = %d", got)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Operation != linmap.OpNone || s.Scaling != linmap.ScaleOriginal {
		t.Fatalf("unexpected default transform: %+v", s)
	}
	if s.View != ViewMap || s.Shape != shape.Circle || s.PointCount != DefaultPointCount {
		t.Fatalf("unexpected default view settings: %+v", s)
	}
	if !s.Display.UnmappedArrows || !s.Display.MappedArrows ||
		!s.Display.UnmappedOutline || !s.Display.MappedOutline {
		t.Fatalf("arrows and outlines should default on: %+v", s.Display)
	}
	if s.Display.UnmappedReference || s.Display.MappedReference {
		t.Fatalf("reference arrows should default off: %+v", s.Display)
	}
	if s.SourceMatrix != MatrixA {
		t.Fatalf("default source matrix = %s, want A", s.SourceMatrix)
	}
}
