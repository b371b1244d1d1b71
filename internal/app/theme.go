package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// VisualizerTheme darkens the chrome around the plots so the panel
// backgrounds blend with the rest of the window.
type VisualizerTheme struct{}

var _ fyne.Theme = (*VisualizerTheme)(nil)

func (t *VisualizerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xFF, G: 0x64, B: 0x64, A: 0xFF} // Matches the mapped-shape red
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x2A, G: 0x2A, B: 0x2A, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *VisualizerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *VisualizerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *VisualizerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Tighter padding keeps four plots usable on small screens
	default:
		return theme.DefaultTheme().Size(name)
	}
}
