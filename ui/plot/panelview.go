package plot

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"lineon/internal/pipeline"
)

// PanelView is a Fyne widget that renders one panel's scene through a
// pixel raster. It redraws whenever the scene or the shared range changes
// and whenever Fyne resizes the raster.
type PanelView struct {
	widget.BaseWidget

	mu    sync.Mutex
	scene *Scene
	rng   pipeline.AxisRange

	raster *canvas.Raster

	// OnTapped is called when the user clicks the plot; the window uses it
	// to activate the panel.
	OnTapped func()
}

// NewPanelView creates an empty panel view showing only the axes.
func NewPanelView() *PanelView {
	v := &PanelView{
		scene: &Scene{},
		rng:   pipeline.DefaultRange(),
	}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// SetScene replaces the displayed scene and range, then redraws.
func (v *PanelView) SetScene(s *Scene, r pipeline.AxisRange) {
	v.mu.Lock()
	v.scene = s
	v.rng = r
	v.mu.Unlock()

	v.raster.Refresh()
}

func (v *PanelView) draw(w, h int) image.Image {
	v.mu.Lock()
	scene, rng := v.scene, v.rng
	v.mu.Unlock()

	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return RenderImage(scene, rng, w, h)
}

// Snapshot renders the current scene at a fixed size, independent of the
// on-screen raster, for PNG export.
func (v *PanelView) Snapshot(w, h int) *image.RGBA {
	v.mu.Lock()
	scene, rng := v.scene, v.rng
	v.mu.Unlock()
	return RenderImage(scene, rng, w, h)
}

// Tapped implements fyne.Tappable.
func (v *PanelView) Tapped(*fyne.PointEvent) {
	if v.OnTapped != nil {
		v.OnTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (v *PanelView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize keeps panels from collapsing when the window shrinks.
func (v *PanelView) MinSize() fyne.Size {
	return fyne.NewSize(180, 180)
}
