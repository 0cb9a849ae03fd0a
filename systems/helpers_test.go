package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/config"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
)

// newTestContext returns a running game with a fixed seed and every system registered
func newTestContext(t *testing.T) *engine.GameContext {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1234
	cfg.Storage.Enabled = false
	ctx := engine.NewGameContext(cfg, engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	RegisterAll(ctx)
	ctx.StartRun()
	ctx.Events.Consume()
	return ctx
}

// clearField removes everything except the ship
func clearField(ctx *engine.GameContext) {
	for _, e := range ctx.World.Asteroids.All() {
		ctx.World.DestroyEntity(e)
	}
	for _, e := range ctx.World.Resources.All() {
		ctx.World.DestroyEntity(e)
	}
}

func placeShip(ctx *engine.GameContext, x, y int) {
	ctx.World.Positions.Add(ctx.State.ShipEntity, components.PositionComponent{X: x, Y: y})
}

func setFuel(ctx *engine.GameContext, fuel float64) {
	ship, _ := ctx.Ship()
	ship.Fuel = fuel
	ctx.World.Ships.Add(ctx.State.ShipEntity, ship)
}

func addAsteroid(ctx *engine.GameContext, x, y int) engine.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Positions.Add(e, components.PositionComponent{X: x, Y: y})
	ctx.World.Asteroids.Add(e, components.AsteroidComponent{})
	return e
}

func addResource(ctx *engine.GameContext, x, y int, kind components.ResourceKind) engine.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Positions.Add(e, components.PositionComponent{X: x, Y: y})
	ctx.World.Resources.Add(e, components.ResourceComponent{Kind: kind})
	return e
}

func eventsOfType(evs []events.GameEvent, t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range evs {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
