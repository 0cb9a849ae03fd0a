package components

// AsteroidComponent marks an obstacle entity
type AsteroidComponent struct {
	// SpawnTick is the simulation tick the asteroid appeared on, 0 for the initial layout
	SpawnTick uint64
}
