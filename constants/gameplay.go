package constants

// Fuel System
const (
	// MaxFuel is the tank capacity and the starting fuel of every run
	MaxFuel = 100.0

	// FuelActionBurn is consumed on ticks with a move or mine intent
	FuelActionBurn = 0.5

	// FuelIdleBurn is consumed on ticks without an intent
	FuelIdleBurn = 0.05

	// CrystalRefuel is the fuel gained by mining a crystal, capped at MaxFuel
	CrystalRefuel = 20.0

	// FuelLowThreshold is the fraction of MaxFuel below which the low fuel warning fires
	FuelLowThreshold = 0.25
)

// Scoring
const (
	// ScorePerMine is awarded for every mined resource regardless of kind
	ScorePerMine = 10
)

// Asteroid Spawning & Difficulty
const (
	// InitialSpawnRate is the number of ticks between asteroid spawns at run start
	InitialSpawnRate = 50

	// SpawnRateStep is subtracted from the spawn rate at every difficulty step
	SpawnRateStep = 5

	// MinSpawnRate stops further difficulty steps once reached
	MinSpawnRate = 10

	// DifficultyInterval is the number of ticks between difficulty steps
	DifficultyInterval = 500

	// MaxAsteroids caps the asteroid population
	MaxAsteroids = 150

	// SpawnMaxAttempts bounds random placement retries
	SpawnMaxAttempts = 100
)

// Resource Spawning
const (
	// ResourceSpawnInterval is the number of ticks between resource spawns
	ResourceSpawnInterval = 40

	// MaxResources caps the number of resource nodes in the field
	MaxResources = 6

	// Resource kind weights (percent, must sum to 100)
	IronWeight    = 50
	CrystalWeight = 30
	GoldWeight    = 20
)
