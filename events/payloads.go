package events

import (
	"time"

	"github.com/lixenwraith/space-miner/components"
)

// EndReason records why a run ended
type EndReason int

const (
	EndNone EndReason = iota
	EndCollision
	EndFuelExhausted
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndCollision:
		return "collision"
	case EndFuelExhausted:
		return "fuel_exhausted"
	case EndQuit:
		return "quit"
	default:
		return "none"
	}
}

// Message is the human-readable game over line for the reason
func (r EndReason) Message() string {
	switch r {
	case EndCollision:
		return "Hull breached by an asteroid"
	case EndFuelExhausted:
		return "Out of fuel"
	case EndQuit:
		return "Run abandoned"
	default:
		return ""
	}
}

// ParseEndReason is the inverse of EndReason.String, unknown names map to EndNone
func ParseEndReason(s string) EndReason {
	switch s {
	case "collision":
		return EndCollision
	case "fuel_exhausted":
		return EndFuelExhausted
	case "quit":
		return EndQuit
	default:
		return EndNone
	}
}

// RunStartedPayload identifies a fresh run
type RunStartedPayload struct {
	RunID string
	Seed  uint64
}

// RunEndedPayload carries the final tally of a run
type RunEndedPayload struct {
	RunID    string
	Reason   EndReason
	Score    int
	Cargo    components.Cargo
	Ticks    uint64
	Duration time.Duration
}

// ResourceMinedPayload describes a completed mining action
type ResourceMinedPayload struct {
	Kind     components.ResourceKind
	X, Y     int
	Refueled float64 // Fuel actually added after capping
	Score    int     // Score after the award
}

// ResourceSpawnedPayload describes a new resource node
type ResourceSpawnedPayload struct {
	Kind components.ResourceKind
	X, Y int
}

// PointPayload carries a grid cell
type PointPayload struct {
	X, Y int
}

// FuelPayload carries the fuel level at the time of the event
type FuelPayload struct {
	Fuel float64
}

// DifficultyPayload carries the new ticks-per-asteroid rate
type DifficultyPayload struct {
	SpawnRate int
}

// PausePayload reports the pause state after the toggle
type PausePayload struct {
	Paused bool
}
