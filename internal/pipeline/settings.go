// Package pipeline derives renderable geometry for a display panel from a
// base matrix and the panel's settings, and computes the shared axis range
// across panels.
package pipeline

import (
	"lineon/internal/linmap"
	"lineon/internal/shape"
)

// ViewMode determines how a panel's arrows are anchored.
type ViewMode string

const (
	// ViewMap anchors both unmapped and mapped arrows at the origin.
	ViewMap ViewMode = "map"
	// ViewDifference draws mapped arrows from each unmapped point to its
	// image, visualizing the displacement.
	ViewDifference ViewMode = "difference"
	// ViewNormal draws mapped arrows from each unmapped point, extended by
	// the mapped vector.
	ViewNormal ViewMode = "normal"
)

// ViewModes lists all view modes in menu order.
func ViewModes() []ViewMode {
	return []ViewMode{ViewMap, ViewDifference, ViewNormal}
}

// Label returns the view mode's display name.
func (v ViewMode) Label() string {
	switch v {
	case ViewDifference:
		return "Difference"
	case ViewNormal:
		return "Normal"
	}
	return "Map"
}

// MatrixID names one of the four base matrices a panel can reference.
type MatrixID string

const (
	MatrixA MatrixID = "A"
	MatrixB MatrixID = "B"
	MatrixC MatrixID = "C"
	MatrixD MatrixID = "D"
)

// MatrixIDs lists the base matrix names in order.
func MatrixIDs() []MatrixID {
	return []MatrixID{MatrixA, MatrixB, MatrixC, MatrixD}
}

// Point count limits enforced by the UI.
const (
	MinPointCount     = 4
	MaxPointCount     = 100
	DefaultPointCount = 12
)

// DisplayOptions selects which elements of a panel's geometry are drawn.
type DisplayOptions struct {
	UnmappedArrows    bool
	MappedArrows      bool
	UnmappedOutline   bool
	MappedOutline     bool
	UnmappedReference bool
	MappedReference   bool
}

// Settings holds one panel's transformation settings. Each panel owns an
// independent instance, mutated only while that panel is active in the UI.
type Settings struct {
	Operation    linmap.Operation
	Scaling      linmap.Scaling
	View         ViewMode
	Shape        shape.Kind
	PointCount   int
	Display      DisplayOptions
	SourceMatrix MatrixID
}

// DefaultSettings returns the settings a fresh panel starts with.
func DefaultSettings() Settings {
	return Settings{
		Operation:  linmap.OpNone,
		Scaling:    linmap.ScaleOriginal,
		View:       ViewMap,
		Shape:      shape.Circle,
		PointCount: DefaultPointCount,
		Display: DisplayOptions{
			UnmappedArrows:  true,
			MappedArrows:    true,
			UnmappedOutline: true,
			MappedOutline:   true,
		},
		SourceMatrix: MatrixA,
	}
}

// ClampPointCount restricts a point count to the UI range.
func ClampPointCount(n int) int {
	if n < MinPointCount {
		return MinPointCount
	}
	if n > MaxPointCount {
		return MaxPointCount
	}
	return n
}
