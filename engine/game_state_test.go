package engine

import (
	"testing"

	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/input"
)

func TestIntentBufferBounded(t *testing.T) {
	gs := NewGameState()

	for i := 0; i < constants.InputQueueSize; i++ {
		if !gs.PushIntent(input.IntentRight) {
			t.Fatalf("Push %d should fit", i)
		}
	}
	if gs.PushIntent(input.IntentMine) {
		t.Error("Push beyond capacity should be dropped")
	}
	if gs.PendingIntents() != constants.InputQueueSize {
		t.Errorf("Expected %d pending, got %d", constants.InputQueueSize, gs.PendingIntents())
	}
}

func TestIntentBufferFIFO(t *testing.T) {
	gs := NewGameState()
	gs.PushIntent(input.IntentUp)
	gs.PushIntent(input.IntentMine)
	gs.PushIntent(input.IntentLeft)

	expected := []input.Intent{input.IntentUp, input.IntentMine, input.IntentLeft, input.IntentNone}
	for i, want := range expected {
		if got := gs.PopIntent(); got != want {
			t.Errorf("Pop %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestResetRunClearsState(t *testing.T) {
	gs := NewGameState()
	gs.Score = 120
	gs.Tick = 900
	gs.MineRequested = true
	gs.PushIntent(input.IntentDown)

	gs.resetRun("run-1", 7, 50)

	if gs.Phase != PhasePlaying {
		t.Errorf("Expected playing phase, got %v", gs.Phase)
	}
	if gs.Score != 0 || gs.Tick != 0 || gs.MineRequested || gs.PendingIntents() != 0 {
		t.Errorf("Run values not cleared: %+v", gs)
	}
	if gs.SpawnRate != 50 || gs.Seed != 7 || gs.RunID != "run-1" {
		t.Errorf("Run identity not applied: %+v", gs)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseWelcome:  "welcome",
		PhasePlaying:  "playing",
		PhasePaused:   "paused",
		PhaseGameOver: "game_over",
		Phase(42):     "unknown",
	}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
