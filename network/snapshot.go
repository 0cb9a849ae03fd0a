package network

import (
	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/engine"
)

// Point is a field cell
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ResourcePoint is a resource node on the field
type ResourcePoint struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// Snapshot is the read-only game view sent to spectators
type Snapshot struct {
	RunID      string          `json:"run_id,omitempty"`
	Phase      string          `json:"phase"`
	Tick       uint64          `json:"tick"`
	Score      int             `json:"score"`
	Fuel       float64         `json:"fuel"`
	MaxFuel    float64         `json:"max_fuel"`
	SpawnRate  int             `json:"spawn_rate"`
	PlayTimeMs int64           `json:"play_time_ms"`
	EndReason  string          `json:"end_reason,omitempty"`
	Field      Point           `json:"field"`
	Cargo      map[string]int  `json:"cargo"`
	Ship       *Point          `json:"ship,omitempty"`
	Asteroids  []Point         `json:"asteroids"`
	Resources  []ResourcePoint `json:"resources"`
}

// NewSnapshot captures the current game state, called on the game loop goroutine
func NewSnapshot(ctx *engine.GameContext) *Snapshot {
	world := ctx.World
	state := ctx.State

	snap := &Snapshot{
		RunID:      state.RunID,
		Phase:      state.Phase.String(),
		Tick:       state.Tick,
		Score:      state.Score,
		MaxFuel:    ctx.Config.Fuel.Max,
		SpawnRate:  state.SpawnRate,
		PlayTimeMs: ctx.PlayTime().Milliseconds(),
		Field:      Point{X: ctx.Config.Field.Width, Y: ctx.Config.Field.Height},
		Cargo:      make(map[string]int, components.ResourceKindCount),
		Asteroids:  make([]Point, 0, world.Asteroids.Count()),
		Resources:  make([]ResourcePoint, 0, world.Resources.Count()),
	}
	if state.Phase == engine.PhaseGameOver {
		snap.EndReason = state.EndReason.String()
	}

	ship, hasShip := ctx.Ship()
	for _, kind := range components.AllResourceKinds {
		snap.Cargo[kind.String()] = ship.Cargo[kind]
	}
	if hasShip {
		snap.Fuel = ship.Fuel
		if pos, ok := world.Positions.Get(state.ShipEntity); ok {
			snap.Ship = &Point{X: pos.X, Y: pos.Y}
		}
	}

	for _, e := range world.Asteroids.All() {
		if pos, ok := world.Positions.Get(e); ok {
			snap.Asteroids = append(snap.Asteroids, Point{X: pos.X, Y: pos.Y})
		}
	}
	for _, e := range world.Resources.All() {
		res, _ := world.Resources.Get(e)
		if pos, ok := world.Positions.Get(e); ok {
			snap.Resources = append(snap.Resources, ResourcePoint{X: pos.X, Y: pos.Y, Kind: res.Kind.String()})
		}
	}

	return snap
}
