package systems

import (
	"time"

	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
	"github.com/lixenwraith/space-miner/input"
	"github.com/lixenwraith/space-miner/vmath"
)

// MovementSystem applies one buffered ship action per tick and burns fuel
type MovementSystem struct {
	ctx *engine.GameContext
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update consumes the oldest intent, moves the ship and burns fuel
func (s *MovementSystem) Update(world *engine.World, dt time.Duration) {
	state := s.ctx.State
	cfg := s.ctx.Config

	intent := state.PopIntent()
	state.LastIntent = intent
	state.MineRequested = intent == input.IntentMine

	shipEntity := state.ShipEntity
	ship, ok := world.Ships.Get(shipEntity)
	if !ok {
		return
	}

	if intent.IsMovement() {
		if pos, ok := world.Positions.Get(shipEntity); ok {
			dx, dy := intent.Delta()
			pos.X = vmath.Clamp(pos.X+dx, 0, cfg.Field.Width-constants.ShipWidth)
			pos.Y = vmath.Clamp(pos.Y+dy, 0, cfg.Field.Height-constants.ShipHeight)
			world.Positions.Add(shipEntity, pos)
		}
	}

	burn := cfg.Fuel.IdleBurn
	if intent.IsShipAction() {
		burn = cfg.Fuel.ActionBurn
	}
	ship.Fuel = vmath.Clamp(ship.Fuel-burn, 0, cfg.Fuel.Max)

	threshold := cfg.Fuel.Max * cfg.Fuel.LowThreshold
	switch {
	case !ship.FuelLowWarned && ship.Fuel < threshold:
		ship.FuelLowWarned = true
		s.ctx.PushEvent(events.EventFuelLow, &events.FuelPayload{Fuel: ship.Fuel})
	case ship.FuelLowWarned && ship.Fuel >= threshold:
		// Re-armed by a crystal refuel
		ship.FuelLowWarned = false
	}

	world.Ships.Add(shipEntity, ship)
}
