package systems

import (
	"time"

	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
)

// CollisionSystem ends the run on asteroid contact or an empty tank
type CollisionSystem struct {
	ctx *engine.GameContext
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update checks the ship hitbox against asteroids, then the fuel level
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	bounds, ok := s.ctx.ShipBounds()
	if !ok {
		return
	}

	if rock, hit := engine.FirstOverlapping(world, world.Asteroids, bounds); hit {
		pos, _ := world.Positions.Get(rock)
		s.ctx.PushEvent(events.EventShipCrashed, &events.PointPayload{X: pos.X, Y: pos.Y})
		s.ctx.EndRun(events.EndCollision)
		return
	}

	ship, ok := s.ctx.Ship()
	if ok && ship.Fuel <= 0 {
		s.ctx.PushEvent(events.EventFuelExhausted, &events.FuelPayload{Fuel: ship.Fuel})
		s.ctx.EndRun(events.EndFuelExhausted)
	}
}
