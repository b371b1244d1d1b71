// Package panels provides the settings side panel.
package panels

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"lineon/internal/app"
	"lineon/internal/linmap"
	"lineon/internal/pipeline"
	"lineon/internal/shape"
)

// SidePanel provides the matrix editors and the per-panel display settings.
// The settings section always edits the active panel; selecting another
// panel reloads the widgets from that panel's own settings.
type SidePanel struct {
	state     *app.State
	container fyne.CanvasObject

	// True while widgets are being populated from state, so their change
	// callbacks don't write the values straight back.
	loading bool

	editors map[pipeline.MatrixID]*matrixEditor

	panelSelect   *widget.RadioGroup
	settingsTitle *widget.Label

	operationSelect *widget.Select
	scalingSelect   *widget.Select
	viewSelect      *widget.Select
	shapeSelect     *widget.Select
	sourceSelect    *widget.Select
	countEntry      *widget.Entry

	unmappedArrows    *widget.Check
	mappedArrows      *widget.Check
	unmappedOutline   *widget.Check
	mappedOutline     *widget.Check
	unmappedReference *widget.Check
	mappedReference   *widget.Check
}

// NewSidePanel creates the side panel bound to the application state.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{
		state:   state,
		editors: make(map[pipeline.MatrixID]*matrixEditor),
	}

	// Matrix editors, one tab per base matrix.
	matrixTabs := container.NewAppTabs()
	for _, id := range pipeline.MatrixIDs() {
		editor := newMatrixEditor(state, id)
		sp.editors[id] = editor
		matrixTabs.Append(container.NewTabItem("Matrix "+string(id), editor.container))
	}

	// Active panel selection.
	names := make([]string, app.PanelCount)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	sp.panelSelect = widget.NewRadioGroup(names, func(selected string) {
		if sp.loading || selected == "" {
			return
		}
		if n, err := strconv.Atoi(selected); err == nil {
			state.SetActivePanel(n - 1)
		}
	})
	sp.panelSelect.Horizontal = true
	sp.panelSelect.SetSelected("1")

	sp.settingsTitle = widget.NewLabel("Panel 1 Settings")
	sp.settingsTitle.TextStyle = fyne.TextStyle{Bold: true}

	sp.operationSelect = widget.NewSelect(operationLabels(), func(string) { sp.applySettings() })
	sp.scalingSelect = widget.NewSelect(scalingLabels(), func(string) { sp.applySettings() })
	sp.viewSelect = widget.NewSelect(viewLabels(), func(string) { sp.applySettings() })
	sp.shapeSelect = widget.NewSelect(shapeLabels(), func(string) { sp.applySettings() })

	sourceNames := make([]string, 0, len(pipeline.MatrixIDs()))
	for _, id := range pipeline.MatrixIDs() {
		sourceNames = append(sourceNames, string(id))
	}
	sp.sourceSelect = widget.NewSelect(sourceNames, func(string) { sp.applySettings() })

	sp.countEntry = widget.NewEntry()
	sp.countEntry.OnSubmitted = func(string) { sp.applySettings() }

	check := func(label string) *widget.Check {
		return widget.NewCheck(label, func(bool) { sp.applySettings() })
	}
	sp.unmappedArrows = check("Unmapped arrows")
	sp.mappedArrows = check("Mapped arrows")
	sp.unmappedOutline = check("Unmapped outline")
	sp.mappedOutline = check("Mapped outline")
	sp.unmappedReference = check("Unmapped reference")
	sp.mappedReference = check("Mapped reference")

	settings := container.NewVBox(
		sp.settingsTitle,
		widget.NewForm(
			widget.NewFormItem("Matrix", sp.sourceSelect),
			widget.NewFormItem("Operation", sp.operationSelect),
			widget.NewFormItem("Scaling", sp.scalingSelect),
			widget.NewFormItem("View", sp.viewSelect),
			widget.NewFormItem("Shape", sp.shapeSelect),
			widget.NewFormItem(fmt.Sprintf("Arrows (%d-%d)", pipeline.MinPointCount, pipeline.MaxPointCount), sp.countEntry),
		),
		sp.unmappedArrows,
		sp.mappedArrows,
		sp.unmappedOutline,
		sp.mappedOutline,
		sp.unmappedReference,
		sp.mappedReference,
	)

	sp.container = container.NewVBox(
		widget.NewLabelWithStyle("Matrices", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		matrixTabs,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Active Panel", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sp.panelSelect,
		widget.NewSeparator(),
		settings,
	)

	state.On(app.EventActivePanelChanged, func(data interface{}) {
		sp.LoadActivePanel()
	})

	sp.LoadActivePanel()
	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// LoadActivePanel populates the settings widgets from the active panel's
// settings without writing anything back.
func (sp *SidePanel) LoadActivePanel() {
	panel := sp.state.ActivePanel()
	s := sp.state.Settings(panel)

	sp.loading = true
	defer func() { sp.loading = false }()

	sp.panelSelect.SetSelected(strconv.Itoa(panel + 1))
	sp.settingsTitle.SetText(fmt.Sprintf("Panel %d Settings", panel+1))

	sp.sourceSelect.SetSelected(string(s.SourceMatrix))
	sp.operationSelect.SetSelected(s.Operation.Label())
	sp.scalingSelect.SetSelected(s.Scaling.Label())
	sp.viewSelect.SetSelected(s.View.Label())
	sp.shapeSelect.SetSelected(s.Shape.Label())
	sp.countEntry.SetText(strconv.Itoa(s.PointCount))

	sp.unmappedArrows.SetChecked(s.Display.UnmappedArrows)
	sp.mappedArrows.SetChecked(s.Display.MappedArrows)
	sp.unmappedOutline.SetChecked(s.Display.UnmappedOutline)
	sp.mappedOutline.SetChecked(s.Display.MappedOutline)
	sp.unmappedReference.SetChecked(s.Display.UnmappedReference)
	sp.mappedReference.SetChecked(s.Display.MappedReference)
}

// applySettings writes the widget values into the active panel's settings.
func (sp *SidePanel) applySettings() {
	if sp.loading {
		return
	}

	panel := sp.state.ActivePanel()
	s := sp.state.Settings(panel)

	s.SourceMatrix = pipeline.MatrixID(sp.sourceSelect.Selected)
	s.Operation = operationByLabel(sp.operationSelect.Selected)
	s.Scaling = scalingByLabel(sp.scalingSelect.Selected)
	s.View = viewByLabel(sp.viewSelect.Selected)
	s.Shape = shapeByLabel(sp.shapeSelect.Selected)

	if n, err := strconv.Atoi(sp.countEntry.Text); err == nil {
		s.PointCount = n
	}

	s.Display = pipeline.DisplayOptions{
		UnmappedArrows:    sp.unmappedArrows.Checked,
		MappedArrows:      sp.mappedArrows.Checked,
		UnmappedOutline:   sp.unmappedOutline.Checked,
		MappedOutline:     sp.mappedOutline.Checked,
		UnmappedReference: sp.unmappedReference.Checked,
		MappedReference:   sp.mappedReference.Checked,
	}

	sp.state.UpdateSettings(panel, s)
	// UpdateSettings clamps the point count; reflect it in the entry.
	if clamped := sp.state.Settings(panel).PointCount; strconv.Itoa(clamped) != sp.countEntry.Text {
		sp.loading = true
		sp.countEntry.SetText(strconv.Itoa(clamped))
		sp.loading = false
	}
}

// matrixEditor is a 2x2 grid of entries editing one base matrix.
type matrixEditor struct {
	container fyne.CanvasObject
	entries   [2][2]*widget.Entry
}

func newMatrixEditor(state *app.State, id pipeline.MatrixID) *matrixEditor {
	me := &matrixEditor{}

	objects := make([]fyne.CanvasObject, 0, 4)
	m := state.RawMatrix(id)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			row, col := row, col
			entry := widget.NewEntry()
			entry.SetText(strconv.FormatFloat(m[row][col], 'g', -1, 64))
			entry.OnChanged = func(text string) {
				state.SetMatrixCell(id, row, col, text)
			}
			me.entries[row][col] = entry
			objects = append(objects, entry)
		}
	}

	me.container = container.NewGridWithColumns(2, objects...)
	return me
}

func operationLabels() []string {
	ops := linmap.Operations()
	labels := make([]string, len(ops))
	for i, op := range ops {
		labels[i] = op.Label()
	}
	return labels
}

func operationByLabel(label string) linmap.Operation {
	for _, op := range linmap.Operations() {
		if op.Label() == label {
			return op
		}
	}
	return linmap.OpNone
}

func scalingLabels() []string {
	scalings := linmap.Scalings()
	labels := make([]string, len(scalings))
	for i, s := range scalings {
		labels[i] = s.Label()
	}
	return labels
}

func scalingByLabel(label string) linmap.Scaling {
	for _, s := range linmap.Scalings() {
		if s.Label() == label {
			return s
		}
	}
	return linmap.ScaleOriginal
}

func viewLabels() []string {
	views := pipeline.ViewModes()
	labels := make([]string, len(views))
	for i, v := range views {
		labels[i] = v.Label()
	}
	return labels
}

func viewByLabel(label string) pipeline.ViewMode {
	for _, v := range pipeline.ViewModes() {
		if v.Label() == label {
			return v
		}
	}
	return pipeline.ViewMap
}

func shapeLabels() []string {
	kinds := shape.Kinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.Label()
	}
	return labels
}

func shapeByLabel(label string) shape.Kind {
	for _, k := range shape.Kinds() {
		if k.Label() == label {
			return k
		}
	}
	return shape.Circle
}
