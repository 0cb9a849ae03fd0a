package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventRunStarted marks the first tick of a fresh run
	// Trigger: GameContext.StartRun | Payload: *RunStartedPayload
	EventRunStarted EventType = iota

	// EventRunEnded marks the end of a run for any reason
	// Trigger: GameContext.EndRun
	// Consumer: score recorder, audio, spectator feed | Payload: *RunEndedPayload
	EventRunEnded

	// EventResourceMined signals a resource node was converted into cargo
	// Trigger: MiningSystem | Consumer: audio | Payload: *ResourceMinedPayload
	EventResourceMined

	// EventShipCrashed signals the ship hitbox overlapped an asteroid
	// Trigger: CollisionSystem | Consumer: audio | Payload: *PointPayload
	EventShipCrashed

	// EventFuelExhausted signals the tank ran dry
	// Trigger: CollisionSystem | Consumer: audio | Payload: *FuelPayload
	EventFuelExhausted

	// EventFuelLow fires once each time fuel drops under the warning threshold
	// Trigger: MovementSystem | Consumer: audio | Payload: *FuelPayload
	EventFuelLow

	// EventAsteroidSpawned signals a new asteroid entity
	// Trigger: SpawnSystem | Payload: *PointPayload
	EventAsteroidSpawned

	// EventResourceSpawned signals a new resource node
	// Trigger: SpawnSystem | Payload: *ResourceSpawnedPayload
	EventResourceSpawned

	// EventDifficultyIncreased signals a spawn rate step
	// Trigger: SpawnSystem | Payload: *DifficultyPayload
	EventDifficultyIncreased

	// EventPauseToggled signals entering or leaving pause
	// Trigger: GameContext.TogglePause | Payload: *PausePayload
	EventPauseToggled

	eventTypeCount
)

// AllEventTypes lists every defined event type in declaration order
func AllEventTypes() []EventType {
	types := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

var eventTypeNames = map[EventType]string{
	EventRunStarted:          "run_started",
	EventRunEnded:            "run_ended",
	EventResourceMined:       "resource_mined",
	EventShipCrashed:         "ship_crashed",
	EventFuelExhausted:       "fuel_exhausted",
	EventFuelLow:             "fuel_low",
	EventAsteroidSpawned:     "asteroid_spawned",
	EventResourceSpawned:     "resource_spawned",
	EventDifficultyIncreased: "difficulty_increased",
	EventPauseToggled:        "pause_toggled",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64
	Timestamp time.Time
}
