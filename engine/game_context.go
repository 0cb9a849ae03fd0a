package engine

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/config"
	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/events"
	"github.com/lixenwraith/space-miner/input"
	"github.com/lixenwraith/space-miner/vmath"
)

// GameContext holds all game state including the ECS world
type GameContext struct {
	Config *config.Config

	World  *World
	State  *GameState
	Events *events.EventQueue

	// TimeProvider is the wall clock, Clock derives play time from it
	TimeProvider TimeProvider
	Clock        *PausableClock

	// Rand is reseeded at every run start
	Rand *vmath.FastRand
}

// NewGameContext creates a context in the welcome phase, systems are added by the caller
func NewGameContext(cfg *config.Config, tp TimeProvider) *GameContext {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &GameContext{
		Config:       cfg,
		World:        NewWorld(),
		State:        NewGameState(),
		Events:       events.NewEventQueue(),
		TimeProvider: tp,
		Clock:        NewPausableClock(tp),
		Rand:         vmath.NewFastRand(1),
	}
}

// PushEvent stamps and queues an event for dispatch after the current tick
func (ctx *GameContext) PushEvent(t events.EventType, payload any) {
	ctx.Events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      ctx.State.Tick,
		Timestamp: ctx.TimeProvider.Now(),
	})
}

// StartRun clears the world and places the initial layout
func (ctx *GameContext) StartRun() {
	seed := ctx.Config.Seed
	if seed == 0 {
		seed = uint64(ctx.TimeProvider.Now().UnixNano())
	}

	ctx.World.Clear()
	ctx.Rand = vmath.NewFastRand(seed)
	ctx.State.resetRun(uuid.NewString(), seed, ctx.Config.Spawn.InitialRate)
	ctx.Clock.Reset()

	field := ctx.Config.Field
	ship := ctx.World.CreateEntity()
	ctx.World.Positions.Add(ship, components.PositionComponent{
		X: vmath.Clamp(constants.ShipStartX, 0, field.Width-constants.ShipWidth),
		Y: vmath.Clamp(constants.ShipStartY, 0, field.Height-constants.ShipHeight),
	})
	ctx.World.Hitboxes.Add(ship, components.HitboxComponent{Width: constants.ShipWidth, Height: constants.ShipHeight})
	ctx.World.Ships.Add(ship, components.ShipComponent{Fuel: ctx.Config.Fuel.Max})
	ctx.State.ShipEntity = ship

	shipBounds, _ := ctx.World.Bounds(ship)
	inField := func(x, y int) bool {
		return x >= 0 && x < field.Width && y >= 0 && y < field.Height && !shipBounds.Contains(x, y)
	}

	for _, p := range constants.InitialAsteroids {
		if !inField(p[0], p[1]) {
			continue
		}
		e := ctx.World.CreateEntity()
		ctx.World.Positions.Add(e, components.PositionComponent{X: p[0], Y: p[1]})
		ctx.World.Asteroids.Add(e, components.AsteroidComponent{})
	}

	for _, n := range initialResources {
		if !inField(n.x, n.y) {
			continue
		}
		e := ctx.World.CreateEntity()
		ctx.World.Positions.Add(e, components.PositionComponent{X: n.x, Y: n.y})
		ctx.World.Resources.Add(e, components.ResourceComponent{Kind: n.kind})
	}

	log.Printf("[engine] run %s started, seed %d", ctx.State.RunID, seed)
	ctx.PushEvent(events.EventRunStarted, &events.RunStartedPayload{RunID: ctx.State.RunID, Seed: seed})
}

var initialResources = []struct {
	x, y int
	kind components.ResourceKind
}{
	{8, 3, components.ResourceIron},
	{25, 10, components.ResourceCrystal},
	{12, 7, components.ResourceGold},
}

// EndRun moves an active run to game over, no-op otherwise
func (ctx *GameContext) EndRun(reason events.EndReason) {
	if !ctx.State.IsActive() {
		return
	}

	ctx.State.FinalDuration = ctx.Clock.Elapsed()
	ctx.State.Phase = PhaseGameOver
	ctx.State.EndReason = reason

	ship, _ := ctx.Ship()
	log.Printf("[engine] run %s ended: %s, score %d, tick %d", ctx.State.RunID, reason, ctx.State.Score, ctx.State.Tick)
	ctx.PushEvent(events.EventRunEnded, &events.RunEndedPayload{
		RunID:    ctx.State.RunID,
		Reason:   reason,
		Score:    ctx.State.Score,
		Cargo:    ship.Cargo,
		Ticks:    ctx.State.Tick,
		Duration: ctx.State.FinalDuration,
	})
}

// TogglePause switches between playing and paused, no-op in other phases
func (ctx *GameContext) TogglePause() {
	switch ctx.State.Phase {
	case PhasePlaying:
		ctx.State.Phase = PhasePaused
		ctx.Clock.Pause()
	case PhasePaused:
		ctx.State.Phase = PhasePlaying
		ctx.Clock.Resume()
	default:
		return
	}
	ctx.PushEvent(events.EventPauseToggled, &events.PausePayload{Paused: ctx.State.Phase == PhasePaused})
}

// HandleIntent applies a key intent to the session, returns false when the game should exit
func (ctx *GameContext) HandleIntent(intent input.Intent) bool {
	switch ctx.State.Phase {
	case PhaseWelcome:
		if intent == input.IntentQuit {
			return false
		}
		ctx.StartRun()

	case PhasePlaying:
		switch {
		case intent == input.IntentQuit:
			ctx.EndRun(events.EndQuit)
			return false
		case intent == input.IntentPause:
			ctx.TogglePause()
		case intent.IsShipAction():
			ctx.State.PushIntent(intent)
		}

	case PhasePaused:
		switch intent {
		case input.IntentQuit:
			ctx.EndRun(events.EndQuit)
			return false
		case input.IntentPause:
			ctx.TogglePause()
		}

	case PhaseGameOver:
		switch intent {
		case input.IntentQuit:
			return false
		case input.IntentRestart:
			ctx.StartRun()
		}
	}
	return true
}

// Tick advances the simulation by one step, returns false when not playing
func (ctx *GameContext) Tick() bool {
	if ctx.State.Phase != PhasePlaying {
		return false
	}
	ctx.World.Update(ctx.Config.Timing.TickInterval)
	return true
}

// Ship returns the ship component, false when no ship exists
func (ctx *GameContext) Ship() (components.ShipComponent, bool) {
	return ctx.World.Ships.Get(ctx.State.ShipEntity)
}

// ShipBounds returns the ship hitbox rect
func (ctx *GameContext) ShipBounds() (vmath.Rect, bool) {
	return ctx.World.Bounds(ctx.State.ShipEntity)
}

// PlayTime is the elapsed unpaused time of the current or last run
func (ctx *GameContext) PlayTime() time.Duration {
	switch ctx.State.Phase {
	case PhaseGameOver:
		return ctx.State.FinalDuration
	case PhaseWelcome:
		return 0
	default:
		return ctx.Clock.Elapsed()
	}
}
