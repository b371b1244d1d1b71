package app

import (
	"testing"

	"lineon/internal/linmap"
	"lineon/internal/pipeline"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		text     string
		row, col int
		want     float64
	}{
		{"2.5", 0, 1, 2.5},
		{"  -3 ", 1, 0, -3},
		{"", 0, 0, 1},
		{"", 0, 1, 0},
		{"abc", 1, 1, 1},
		{"abc", 1, 0, 0},
	}
	for _, c := range cases {
		if got := ParseCell(c.text, c.row, c.col); got != c.want {
			t.Fatalf("ParseCell(%q, %d, %d) = %g, want %g", c.text, c.row, c.col, got, c.want)
		}
	}
}

func TestAllZeroMatrixReadsAsIdentity(t *testing.T) {
	s := NewState()
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			s.SetMatrixCell(pipeline.MatrixB, row, col, "0")
		}
	}

	if got := s.BaseMatrix(pipeline.MatrixB); got != linmap.Identity() {
		t.Fatalf("all-zero base matrix = %v, want identity", got)
	}
	if got := s.RawMatrix(pipeline.MatrixB); got != (linmap.Matrix{}) {
		t.Fatalf("raw matrix = %v, want zero", got)
	}
}

func TestSetMatrixCellEmitsEvent(t *testing.T) {
	s := NewState()

	var fired []pipeline.MatrixID
	s.On(EventMatrixChanged, func(data interface{}) {
		fired = append(fired, data.(pipeline.MatrixID))
	})

	s.SetMatrixCell(pipeline.MatrixC, 0, 1, "5")

	if len(fired) != 1 || fired[0] != pipeline.MatrixC {
		t.Fatalf("matrix events = %v, want [C]", fired)
	}
	want := linmap.Identity()
	want[0][1] = 5
	if got := s.BaseMatrix(pipeline.MatrixC); got != want {
		t.Fatalf("base matrix = %v, want %v", got, want)
	}
}

func TestSettingsAreIndependentPerPanel(t *testing.T) {
	s := NewState()

	changed := s.Settings(1)
	changed.Operation = linmap.OpTranspose
	changed.PointCount = 30
	s.UpdateSettings(1, changed)

	if got := s.Settings(1).Operation; got != linmap.OpTranspose {
		t.Fatalf("panel 1 operation = %s", got)
	}
	for _, panel := range []int{0, 2, 3} {
		if got := s.Settings(panel); got != pipeline.DefaultSettings() {
			t.Fatalf("panel %d settings changed: %+v", panel, got)
		}
	}
}

func TestUpdateSettingsClampsPointCount(t *testing.T) {
	s := NewState()

	settings := s.Settings(0)
	settings.PointCount = 1000
	s.UpdateSettings(0, settings)

	if got := s.Settings(0).PointCount; got != pipeline.MaxPointCount {
		t.Fatalf("point count = %d, want %d", got, pipeline.MaxPointCount)
	}
}

func TestSetActivePanel(t *testing.T) {
	s := NewState()

	var events []int
	s.On(EventActivePanelChanged, func(data interface{}) {
		events = append(events, data.(int))
	})

	s.SetActivePanel(2)
	s.SetActivePanel(2) // no-op, no second event
	s.SetActivePanel(-1)
	s.SetActivePanel(PanelCount)

	if s.ActivePanel() != 2 {
		t.Fatalf("active panel = %d, want 2", s.ActivePanel())
	}
	if len(events) != 1 || events[0] != 2 {
		t.Fatalf("active panel events = %v, want [2]", events)
	}
}

func TestRecomputeSharesAxisRange(t *testing.T) {
	s := NewState()

	// Panel 1 doubles matrix B while the others show the identity; the
	// shared range must cover the doubled shape.
	s.SetMatrixCell(pipeline.MatrixB, 0, 0, "2")
	s.SetMatrixCell(pipeline.MatrixB, 1, 1, "2")
	settings := s.Settings(1)
	settings.SourceMatrix = pipeline.MatrixB
	s.UpdateSettings(1, settings)

	scene := s.Recompute()

	if scene.Range.XMax < 2 || scene.Range.YMax < 2 {
		t.Fatalf("shared range %+v does not cover the doubled shape", scene.Range)
	}
	if w, h := scene.Range.Width(), scene.Range.Height(); w != h {
		t.Fatalf("shared range not square: %g x %g", w, h)
	}
	for i, p := range scene.Panels {
		if len(p.Geometry.UnmappedPoints) != pipeline.DefaultPointCount {
			t.Fatalf("panel %d has %d points", i, len(p.Geometry.UnmappedPoints))
		}
	}
}

func TestRecomputePanelHeaders(t *testing.T) {
	s := NewState()

	settings := s.Settings(0)
	settings.Operation = linmap.OpRotation
	settings.Scaling = linmap.ScaleHalved
	s.UpdateSettings(0, settings)

	scene := s.Recompute()
	if scene.Panels[0].Label != "Rotation (Halved)" {
		t.Fatalf("panel label = %q", scene.Panels[0].Label)
	}
	if scene.Panels[1].Label != "None" {
		t.Fatalf("default panel label = %q", scene.Panels[1].Label)
	}
	if scene.Panels[0].Readout == "" {
		t.Fatal("panel readout empty")
	}
}
