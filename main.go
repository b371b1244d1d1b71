// Package main provides the entry point for the Lineon application.
package main

import (
	"log"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"lineon/internal/app"
	"lineon/internal/version"
	"lineon/ui/mainwindow"
	"lineon/ui/prefs"
)

const appTitle = "Lineon"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.lineon")
	fyneApp.Settings().SetTheme(&app.VisualizerTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)
	win.SetTitle(appTitle)

	fyneApp.Lifecycle().SetOnStopped(func() {
		win.SavePrefs()
		if err := appPrefs.Save(); err != nil {
			log.Printf("Saving preferences: %v", err)
		}
	})

	setupHotReload(win, appPrefs)

	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the binary is
// recompiled.
func setupHotReload(win *mainwindow.MainWindow, appPrefs *prefs.Prefs) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					return
				}
				win.SavePrefs()
				if err := appPrefs.Save(); err != nil {
					log.Printf("Saving preferences: %v", err)
				}
				log.Println("Hot reload: restarting...")
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
				}
			}, win.Window)
	})

	reloader.Start()
}
