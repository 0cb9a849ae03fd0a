package engine

import (
	"time"

	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/events"
	"github.com/lixenwraith/space-miner/input"
)

// Phase is the session state machine position
type Phase int

const (
	PhaseWelcome Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState holds per-run simulation state
// Owned by the game loop goroutine, other goroutines only see snapshots
type GameState struct {
	Phase Phase

	RunID string
	Seed  uint64

	// Tick counts simulation steps of the current run, advanced by SpawnSystem
	Tick uint64

	// SpawnRate is the number of ticks between asteroid spawns
	SpawnRate int

	Score     int
	EndReason events.EndReason

	// FinalDuration freezes the play time when the run ends
	FinalDuration time.Duration

	ShipEntity Entity

	// MineRequested is set by MovementSystem for the current tick and consumed by MiningSystem
	MineRequested bool

	// LastIntent is the ship action applied on the latest tick
	LastIntent input.Intent

	intents []input.Intent
}

// NewGameState creates state in the welcome phase
func NewGameState() *GameState {
	return &GameState{
		Phase:   PhaseWelcome,
		intents: make([]input.Intent, 0, constants.InputQueueSize),
	}
}

// resetRun clears per-run values for a fresh run
func (gs *GameState) resetRun(runID string, seed uint64, spawnRate int) {
	gs.Phase = PhasePlaying
	gs.RunID = runID
	gs.Seed = seed
	gs.Tick = 0
	gs.SpawnRate = spawnRate
	gs.Score = 0
	gs.EndReason = events.EndNone
	gs.FinalDuration = 0
	gs.ShipEntity = 0
	gs.MineRequested = false
	gs.LastIntent = input.IntentNone
	gs.intents = gs.intents[:0]
}

// PushIntent buffers a ship action for the next ticks
// Returns false when the buffer is full and the intent was dropped
func (gs *GameState) PushIntent(i input.Intent) bool {
	if len(gs.intents) >= constants.InputQueueSize {
		return false
	}
	gs.intents = append(gs.intents, i)
	return true
}

// PopIntent removes and returns the oldest buffered intent, IntentNone when empty
func (gs *GameState) PopIntent() input.Intent {
	if len(gs.intents) == 0 {
		return input.IntentNone
	}
	i := gs.intents[0]
	copy(gs.intents, gs.intents[1:])
	gs.intents = gs.intents[:len(gs.intents)-1]
	return i
}

// PendingIntents returns the number of buffered intents
func (gs *GameState) PendingIntents() int {
	return len(gs.intents)
}

// IsActive reports whether a run is in progress, paused or not
func (gs *GameState) IsActive() bool {
	return gs.Phase == PhasePlaying || gs.Phase == PhasePaused
}
