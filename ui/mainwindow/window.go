// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"lineon/internal/app"
	"lineon/internal/version"
	"lineon/ui/panels"
	"lineon/ui/plot"
	"lineon/ui/prefs"
)

const (
	prefKeyLastDir     = "export.dir"
	prefKeyActivePanel = "panel.active"
	prefKeyWinWidth    = "window.width"
	prefKeyWinHeight   = "window.height"
)

// panelCard is one plot with its header labels.
type panelCard struct {
	title   *widget.Label
	readout *widget.Label
	view    *plot.PanelView
	box     fyne.CanvasObject
}

// MainWindow is the primary application window: a 2x2 grid of display
// panels next to the settings side panel.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	cards [app.PanelCount]*panelCard
}

// New creates the main window and restores the last session's active panel.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Lineon")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	state.SetActivePanel(p.Int(prefKeyActivePanel, 0))
	mw.Refresh()

	w := float32(p.Float(prefKeyWinWidth, 1280))
	h := float32(p.Float(prefKeyWinHeight, 800))
	mw.Resize(fyne.NewSize(w, h))

	return mw
}

// setupUI creates the main layout.
func (mw *MainWindow) setupUI() {
	grid := make([]fyne.CanvasObject, 0, app.PanelCount)
	for i := 0; i < app.PanelCount; i++ {
		card := mw.newPanelCard(i)
		mw.cards[i] = card
		grid = append(grid, card.box)
	}

	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(
		container.NewVScroll(mw.sidePanel.Container()),
		container.NewGridWithColumns(2, grid...),
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)

	mw.SetContent(content)
}

func (mw *MainWindow) newPanelCard(index int) *panelCard {
	card := &panelCard{
		title:   widget.NewLabel(fmt.Sprintf("Panel %d", index+1)),
		readout: widget.NewLabel(""),
		view:    plot.NewPanelView(),
	}
	card.title.TextStyle = fyne.TextStyle{Bold: true}
	card.readout.TextStyle = fyne.TextStyle{Monospace: true}

	// Clicking a plot makes it the panel the side panel edits.
	card.view.OnTapped = func() {
		mw.state.SetActivePanel(index)
	}

	card.box = container.NewBorder(
		container.NewHBox(card.title, card.readout),
		nil,
		nil,
		nil,
		card.view,
	)
	return card
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Active Panel as PNG...", mw.onExportPanel),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewItems := make([]*fyne.MenuItem, 0, app.PanelCount)
	for i := 0; i < app.PanelCount; i++ {
		i := i
		viewItems = append(viewItems, fyne.NewMenuItem("Panel "+strconv.Itoa(i+1), func() {
			mw.state.SetActivePanel(i)
		}))
	}
	viewMenu := fyne.NewMenu("View", viewItems...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventMatrixChanged, func(data interface{}) {
		mw.Refresh()
	})
	mw.state.On(app.EventSettingsChanged, func(data interface{}) {
		mw.Refresh()
	})
	mw.state.On(app.EventActivePanelChanged, func(data interface{}) {
		if panel, ok := data.(int); ok {
			mw.prefs.SetInt(prefKeyActivePanel, panel)
			mw.updateStatus(fmt.Sprintf("Editing panel %d", panel+1))
		}
		mw.Refresh()
	})
}

// Refresh recomputes all panel geometry and redraws the plots with the
// shared axis range.
func (mw *MainWindow) Refresh() {
	scene := mw.state.Recompute()
	active := mw.state.ActivePanel()

	for i, card := range mw.cards {
		p := scene.Panels[i]

		marker := ""
		if i == active {
			marker = " •"
		}
		card.title.SetText(fmt.Sprintf("Panel %d%s: %s", i+1, marker, p.Label))
		card.readout.SetText(p.Readout)
		card.view.SetScene(plot.BuildScene(p.Geometry, p.Settings.Display), scene.Range)
	}
}

// SavePrefs records the window geometry; called on shutdown.
func (mw *MainWindow) SavePrefs() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefKeyWinWidth, float64(size.Width))
	mw.prefs.SetFloat(prefKeyWinHeight, float64(size.Height))
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) lastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// onExportPanel saves the active panel as a standalone PNG with the
// transform description and matrix readout in a header strip.
func (mw *MainWindow) onExportPanel() {
	active := mw.state.ActivePanel()
	scene := mw.state.Recompute()
	p := scene.Panels[active]

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		path := writer.URI().Path()
		mw.prefs.SetString(prefKeyLastDir, filepath.Dir(path))

		img := plot.RenderExport(
			plot.BuildScene(p.Geometry, p.Settings.Display),
			scene.Range,
			[]string{p.Label, p.Readout},
		)
		if err := plot.WritePNG(writer, img); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported panel " + strconv.Itoa(active+1) + " to " + path)
	}, mw.Window)

	fd.SetFileName(fmt.Sprintf("panel-%d.png", active+1))
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	if loc := mw.lastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Lineon",
		fmt.Sprintf("Lineon v%s\n\n"+
			"An interactive visualizer for 2x2 linear transformations.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
