package constants

// Playfield
const (
	// FieldWidth is the number of playable columns inside the border
	FieldWidth = 34

	// FieldHeight is the number of playable rows inside the border
	FieldHeight = 15
)

// Ship
const (
	ShipStartX = 10
	ShipStartY = 10

	// ShipWidth matches the three-cell ship glyph
	ShipWidth  = 3
	ShipHeight = 1

	// SpawnExclusionPadding is the margin around the ship hitbox where nothing spawns
	SpawnExclusionPadding = 2
)

// InitialAsteroids are placed at the start of every run
var InitialAsteroids = [][2]int{
	{5, 5},
	{20, 8},
	{15, 12},
}
