package components

// PositionComponent is the grid cell of an entity's top-left corner
type PositionComponent struct {
	X, Y int
}

// HitboxComponent is the axis-aligned extent of an entity in cells
// Entities without a hitbox occupy a single cell
type HitboxComponent struct {
	Width, Height int
}
