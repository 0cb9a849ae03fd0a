package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
	"github.com/lixenwraith/space-miner/vmath"
)

// SpawnSystem advances the tick counter, places asteroids and resources and raises difficulty
// Spawn timing lives in ctx.State so a restart resets it with the rest of the run
type SpawnSystem struct {
	ctx *engine.GameContext
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update runs the per-tick spawn schedule
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {
	state := s.ctx.State
	spawn := s.ctx.Config.Spawn

	state.Tick++
	tick := state.Tick

	if state.SpawnRate > 0 && tick%uint64(state.SpawnRate) == 0 && world.Asteroids.Count() < spawn.MaxAsteroids {
		s.spawnAsteroid(world, tick)
	}

	if tick%uint64(spawn.DifficultyInterval) == 0 && state.SpawnRate > spawn.MinRate {
		state.SpawnRate = max(spawn.MinRate, state.SpawnRate-spawn.RateStep)
		log.Printf("[spawn] tick %d: spawn rate now %d", tick, state.SpawnRate)
		s.ctx.PushEvent(events.EventDifficultyIncreased, &events.DifficultyPayload{SpawnRate: state.SpawnRate})
	}

	if tick%uint64(spawn.ResourceInterval) == 0 && world.Resources.Count() < spawn.MaxResources {
		s.spawnResource(world)
	}
}

func (s *SpawnSystem) spawnAsteroid(world *engine.World, tick uint64) {
	// Keep fresh asteroids away from the ship so a spawn is never an instant loss
	var exclusion vmath.Rect
	if b, ok := s.ctx.ShipBounds(); ok {
		exclusion = b.Pad(constants.SpawnExclusionPadding)
	}

	x, y, ok := s.findFreeCell(world, exclusion)
	if !ok {
		return
	}

	e := world.CreateEntity()
	world.Positions.Add(e, components.PositionComponent{X: x, Y: y})
	world.Asteroids.Add(e, components.AsteroidComponent{SpawnTick: tick})
	s.ctx.PushEvent(events.EventAsteroidSpawned, &events.PointPayload{X: x, Y: y})
}

func (s *SpawnSystem) spawnResource(world *engine.World) {
	x, y, ok := s.findFreeCell(world, vmath.Rect{})
	if !ok {
		return
	}

	kind := s.rollResourceKind()
	e := world.CreateEntity()
	world.Positions.Add(e, components.PositionComponent{X: x, Y: y})
	world.Resources.Add(e, components.ResourceComponent{Kind: kind})
	s.ctx.PushEvent(events.EventResourceSpawned, &events.ResourceSpawnedPayload{Kind: kind, X: x, Y: y})
}

// findFreeCell picks a random unoccupied cell outside exclusion, false after SpawnMaxAttempts misses
func (s *SpawnSystem) findFreeCell(world *engine.World, exclusion vmath.Rect) (int, int, bool) {
	field := s.ctx.Config.Field
	rng := s.ctx.Rand

	for attempt := 0; attempt < constants.SpawnMaxAttempts; attempt++ {
		x := rng.Intn(field.Width)
		y := rng.Intn(field.Height)
		if exclusion.Contains(x, y) {
			continue
		}
		if world.Occupied(vmath.Rect{X: x, Y: y, W: 1, H: 1}) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

func (s *SpawnSystem) rollResourceKind() components.ResourceKind {
	roll := s.ctx.Rand.Intn(constants.IronWeight + constants.CrystalWeight + constants.GoldWeight)
	switch {
	case roll < constants.IronWeight:
		return components.ResourceIron
	case roll < constants.IronWeight+constants.CrystalWeight:
		return components.ResourceCrystal
	default:
		return components.ResourceGold
	}
}
