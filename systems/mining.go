package systems

import (
	"time"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
	"github.com/lixenwraith/space-miner/vmath"
)

// MiningSystem collects the resource under the ship when a mine was requested this tick
type MiningSystem struct {
	ctx *engine.GameContext
}

// NewMiningSystem creates a new mining system
func NewMiningSystem(ctx *engine.GameContext) *MiningSystem {
	return &MiningSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *MiningSystem) Priority() int {
	return constants.PriorityMining
}

// Update removes the lowest-id resource overlapping the ship and credits it
func (s *MiningSystem) Update(world *engine.World, dt time.Duration) {
	state := s.ctx.State
	if state.Phase != engine.PhasePlaying || !state.MineRequested {
		return
	}
	state.MineRequested = false

	bounds, ok := s.ctx.ShipBounds()
	if !ok {
		return
	}
	node, found := engine.FirstOverlapping(world, world.Resources, bounds)
	if !found {
		return
	}

	res, _ := world.Resources.Get(node)
	pos, _ := world.Positions.Get(node)
	world.DestroyEntity(node)

	ship, _ := world.Ships.Get(state.ShipEntity)
	ship.Cargo[res.Kind]++

	var refueled float64
	if res.Kind == components.ResourceCrystal {
		before := ship.Fuel
		ship.Fuel = vmath.Clamp(ship.Fuel+s.ctx.Config.Fuel.CrystalRefuel, 0, s.ctx.Config.Fuel.Max)
		refueled = ship.Fuel - before
	}
	world.Ships.Add(state.ShipEntity, ship)

	state.Score += s.ctx.Config.ScorePerMine

	s.ctx.PushEvent(events.EventResourceMined, &events.ResourceMinedPayload{
		Kind:     res.Kind,
		X:        pos.X,
		Y:        pos.Y,
		Refueled: refueled,
		Score:    state.Score,
	})
}
