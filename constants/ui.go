package constants

// Glyphs
const (
	ShipGlyph     = ">A<"
	AsteroidGlyph = 'O'
	IronGlyph     = '*'
	CrystalGlyph  = '♦'
	GoldGlyph     = '$'

	FuelBlockFull  = '█'
	FuelBlockEmpty = '░'
)

// Border runes
const (
	BorderHorizontal  = '═'
	BorderVertical    = '║'
	BorderTopLeft     = '╔'
	BorderTopRight    = '╗'
	BorderBottomLeft  = '╚'
	BorderBottomRight = '╝'
	BorderTeeLeft     = '╠'
	BorderTeeRight    = '╣'
)

// HUD Layout
const (
	// FuelBarWidth is the number of cells in the fuel gauge (each cell is 10%)
	FuelBarWidth = 10

	// HUDRows is the number of text rows below the field separator
	HUDRows = 2

	// LeaderboardSize is the number of runs shown on the game over screen
	LeaderboardSize = 5
)

// BoxWidth is the full rendered width including both border columns
func BoxWidth(fieldWidth int) int {
	return fieldWidth + 2
}

// BoxHeight is the full rendered height: top border, field, separator, HUD, bottom border
func BoxHeight(fieldHeight int) int {
	return 1 + fieldHeight + 1 + HUDRows + 1
}
