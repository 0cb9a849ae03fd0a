package storage

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
)

const saveTimeout = 2 * time.Second

// Recorder saves every finished run and publishes the refreshed leaderboard
// Failures are logged, a broken database never ends the game
type Recorder struct {
	repo      *ScoreRepository
	limit     int
	onUpdated func([]RunRecord)
}

// NewRecorder creates a run recorder, onUpdated receives the top runs after each save
func NewRecorder(repo *ScoreRepository, limit int, onUpdated func([]RunRecord)) *Recorder {
	return &Recorder{
		repo:      repo,
		limit:     limit,
		onUpdated: onUpdated,
	}
}

// EventTypes returns the event types the recorder handles
func (rc *Recorder) EventTypes() []events.EventType {
	return []events.EventType{events.EventRunEnded}
}

// HandleEvent persists the ended run
func (rc *Recorder) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	payload, ok := ev.Payload.(*events.RunEndedPayload)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	rec := RunRecord{
		RunID:      payload.RunID,
		Score:      payload.Score,
		Cargo:      payload.Cargo,
		Ticks:      payload.Ticks,
		Reason:     payload.Reason,
		Duration:   payload.Duration,
		FinishedAt: ev.Timestamp,
	}
	if err := rc.repo.SaveRun(ctx, rec); err != nil {
		log.Printf("[storage] %v", err)
		return
	}

	rc.Refresh(ctx)
}

// Refresh loads the leaderboard and hands it to the update callback
func (rc *Recorder) Refresh(ctx context.Context) {
	if rc.onUpdated == nil {
		return
	}
	top, err := rc.repo.TopRuns(ctx, rc.limit)
	if err != nil {
		log.Printf("[storage] %v", err)
		return
	}
	rc.onUpdated(top)
}
