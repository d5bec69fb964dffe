package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Ribbon specific theme color names
const (
	ColorNameTabSeparator fyne.ThemeColorName = "ribbonTabSeparator"
	ColorNameGroupBox     fyne.ThemeColorName = "ribbonGroupBox"
	ColorNameTabSelected  fyne.ThemeColorName = "ribbonTabSelected"
)

// contextualPalette colors contextual tab groups in declaration order
var contextualPalette = []color.RGBA{
	{R: 211, G: 84, B: 0, A: 255},
	{R: 39, G: 174, B: 96, A: 255},
	{R: 142, G: 68, B: 173, A: 255},
	{R: 41, G: 128, B: 185, A: 255},
}

// ContextualColor returns the band color of the index-th contextual group
func ContextualColor(index int) color.Color {
	if index < 0 {
		index = 0
	}
	return contextualPalette[index%len(contextualPalette)]
}

// RibbonTheme is a compact theme with reduced padding and ribbon colors
type RibbonTheme struct{}

// NewRibbonTheme creates a new ribbon theme
func NewRibbonTheme() fyne.Theme {
	return &RibbonTheme{}
}

// Color returns theme colors
func (t *RibbonTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameTabSeparator:
		if variant == theme.VariantDark {
			return color.RGBA{R: 80, G: 80, B: 80, A: 255}
		}
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	case ColorNameGroupBox:
		if variant == theme.VariantDark {
			return color.RGBA{R: 32, G: 32, B: 32, A: 255}
		}
		return color.RGBA{R: 243, G: 243, B: 243, A: 255}
	case ColorNameTabSelected, theme.ColorNamePrimary:
		return color.RGBA{R: 43, G: 87, B: 154, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *RibbonTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *RibbonTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *RibbonTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
