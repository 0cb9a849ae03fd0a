package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-miner/components"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(10, 12, 24)    // Deep space
	RgbBorder     = tcell.NewRGBColor(90, 110, 160)  // Steel blue
	RgbHUDText    = tcell.NewRGBColor(220, 220, 230) // Off-white
	RgbHUDLabel   = tcell.NewRGBColor(140, 150, 170) // Muted gray

	RgbShip     = tcell.NewRGBColor(80, 220, 255)  // Cyan
	RgbAsteroid = tcell.NewRGBColor(150, 120, 100) // Rock brown

	RgbIron    = tcell.NewRGBColor(190, 190, 200) // Metal gray
	RgbCrystal = tcell.NewRGBColor(120, 200, 255) // Ice blue
	RgbGold    = tcell.NewRGBColor(255, 210, 0)   // Gold

	RgbFuelHigh  = tcell.NewRGBColor(0, 200, 0)   // Green
	RgbFuelMid   = tcell.NewRGBColor(255, 200, 0) // Amber
	RgbFuelLow   = tcell.NewRGBColor(255, 60, 60) // Red
	RgbFuelEmpty = tcell.NewRGBColor(70, 70, 80)  // Dim gray

	RgbOverlayBg    = tcell.NewRGBColor(30, 32, 52)    // Panel background
	RgbOverlayTitle = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOver     = tcell.NewRGBColor(255, 80, 80)   // Alarm red
	RgbHint         = tcell.NewRGBColor(150, 150, 150) // Gray
)

// ResourceColor returns the glyph color for a resource kind
func ResourceColor(kind components.ResourceKind) tcell.Color {
	switch kind {
	case components.ResourceIron:
		return RgbIron
	case components.ResourceCrystal:
		return RgbCrystal
	case components.ResourceGold:
		return RgbGold
	default:
		return RgbHUDText
	}
}

// FuelColor picks the fuel bar color for a fill ratio in [0, 1]
func FuelColor(ratio float64) tcell.Color {
	switch {
	case ratio > 0.5:
		return RgbFuelHigh
	case ratio > 0.25:
		return RgbFuelMid
	default:
		return RgbFuelLow
	}
}
