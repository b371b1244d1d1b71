// Package app provides application state, events, theming and lifecycle
// helpers.
package app

import (
	"strconv"
	"strings"
	"sync"

	"lineon/internal/linmap"
	"lineon/internal/pipeline"
)

// PanelCount is the number of independent display panels.
const PanelCount = 4

// State holds the application state: the named base matrices, one Settings
// per panel and the currently active panel. Settings instances live for the
// whole session; switching panels never destroys them.
type State struct {
	mu sync.RWMutex

	matrices    map[pipeline.MatrixID]linmap.Matrix
	settings    [PanelCount]pipeline.Settings
	activePanel int

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventMatrixChanged EventType = iota
	EventSettingsChanged
	EventActivePanelChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates the application state with identity base matrices and
// default settings on every panel.
func NewState() *State {
	s := &State{
		matrices:  make(map[pipeline.MatrixID]linmap.Matrix, len(pipeline.MatrixIDs())),
		listeners: make(map[EventType][]EventListener),
	}
	for _, id := range pipeline.MatrixIDs() {
		s.matrices[id] = linmap.Identity()
	}
	for i := range s.settings {
		s.settings[i] = pipeline.DefaultSettings()
	}
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetMatrixCell updates one cell of a base matrix from UI text. Blank or
// unparseable input resolves to the identity's cell (1 on the diagonal,
// 0 off it).
func (s *State) SetMatrixCell(id pipeline.MatrixID, row, col int, text string) {
	value := ParseCell(text, row, col)

	s.mu.Lock()
	m := s.matrices[id]
	m[row][col] = value
	s.matrices[id] = m
	s.mu.Unlock()

	s.Emit(EventMatrixChanged, id)
}

// BaseMatrix returns the named base matrix. An all-zero matrix reads as
// the identity so the rendered map is never the zero map.
func (s *State) BaseMatrix(id pipeline.MatrixID) linmap.Matrix {
	s.mu.RLock()
	m := s.matrices[id]
	s.mu.RUnlock()

	if m == (linmap.Matrix{}) {
		return linmap.Identity()
	}
	return m
}

// RawMatrix returns the named base matrix without the all-zero
// substitution, for populating entry fields.
func (s *State) RawMatrix(id pipeline.MatrixID) linmap.Matrix {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matrices[id]
}

// Settings returns a copy of the panel's settings.
func (s *State) Settings(panel int) pipeline.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings[panel]
}

// UpdateSettings replaces the panel's settings. The UI only calls this for
// the active panel; other panels' settings are untouched.
func (s *State) UpdateSettings(panel int, settings pipeline.Settings) {
	settings.PointCount = pipeline.ClampPointCount(settings.PointCount)

	s.mu.Lock()
	s.settings[panel] = settings
	s.mu.Unlock()

	s.Emit(EventSettingsChanged, panel)
}

// ActivePanel returns the index of the panel whose settings the side panel
// currently edits.
func (s *State) ActivePanel() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePanel
}

// SetActivePanel selects which panel the side panel edits.
func (s *State) SetActivePanel(panel int) {
	if panel < 0 || panel >= PanelCount {
		return
	}
	s.mu.Lock()
	changed := s.activePanel != panel
	s.activePanel = panel
	s.mu.Unlock()

	if changed {
		s.Emit(EventActivePanelChanged, panel)
	}
}

// PanelScene is one panel's share of a recompute cycle.
type PanelScene struct {
	Settings  pipeline.Settings
	Effective linmap.Matrix
	Geometry  pipeline.Geometry

	// Header strings for the panel card.
	Label   string
	Readout string
}

// Scene is the result of one full recompute cycle: fresh geometry for all
// panels plus the shared axis range.
type Scene struct {
	Panels [PanelCount]PanelScene
	Range  pipeline.AxisRange
}

// Recompute runs the full pipeline for every panel and derives the shared
// axis range. It is called synchronously from the UI event path; each call
// produces an immutable Scene and discards nothing in place.
func (s *State) Recompute() Scene {
	var scene Scene
	geoms := make([]pipeline.Geometry, 0, PanelCount)

	for i := 0; i < PanelCount; i++ {
		settings := s.Settings(i)
		base := s.BaseMatrix(settings.SourceMatrix)
		eff := pipeline.EffectiveMatrix(base, settings)
		geom := pipeline.Prepare(eff, settings)

		scene.Panels[i] = PanelScene{
			Settings:  settings,
			Effective: eff,
			Geometry:  geom,
			Label:     linmap.DescribeTransform(settings.Operation, settings.Scaling),
			Readout:   eff.Format(),
		}
		geoms = append(geoms, geom)
	}

	if r := pipeline.ComputeRange(geoms); r != nil {
		scene.Range = *r
	} else {
		scene.Range = pipeline.DefaultRange()
	}
	return scene
}

// ParseCell converts UI text for a matrix cell to a value, defaulting to
// the identity's cell when the text is blank or not a number.
func ParseCell(text string, row, col int) float64 {
	text = strings.TrimSpace(text)
	if text != "" {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			return v
		}
	}
	if row == col {
		return 1
	}
	return 0
}
