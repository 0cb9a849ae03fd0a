package main

import (
	"log"

	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
)

// eventLogger writes every dispatched event to the debug log
type eventLogger struct{}

func (eventLogger) EventTypes() []events.EventType {
	return events.AllEventTypes()
}

func (eventLogger) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.RunStartedPayload:
		log.Printf("[event] tick=%d %s run=%s seed=%d", ev.Tick, ev.Type, p.RunID, p.Seed)
	case *events.RunEndedPayload:
		log.Printf("[event] tick=%d %s run=%s reason=%s score=%d cargo=%d duration=%s",
			ev.Tick, ev.Type, p.RunID, p.Reason, p.Score, p.Cargo.Total(), p.Duration)
	case *events.ResourceMinedPayload:
		log.Printf("[event] tick=%d %s kind=%s at=(%d,%d) refueled=%.1f score=%d",
			ev.Tick, ev.Type, p.Kind, p.X, p.Y, p.Refueled, p.Score)
	case *events.ResourceSpawnedPayload:
		log.Printf("[event] tick=%d %s kind=%s at=(%d,%d)", ev.Tick, ev.Type, p.Kind, p.X, p.Y)
	case *events.PointPayload:
		log.Printf("[event] tick=%d %s at=(%d,%d)", ev.Tick, ev.Type, p.X, p.Y)
	case *events.FuelPayload:
		log.Printf("[event] tick=%d %s fuel=%.2f", ev.Tick, ev.Type, p.Fuel)
	case *events.DifficultyPayload:
		log.Printf("[event] tick=%d %s rate=%d", ev.Tick, ev.Type, p.SpawnRate)
	case *events.PausePayload:
		log.Printf("[event] tick=%d %s paused=%v", ev.Tick, ev.Type, p.Paused)
	default:
		log.Printf("[event] tick=%d %s", ev.Tick, ev.Type)
	}
}
