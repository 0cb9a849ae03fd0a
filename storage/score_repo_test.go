package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/events"
)

func newTestRepo(t *testing.T) *ScoreRepository {
	t.Helper()
	repo, err := OpenScoreRepository(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Failed to open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndTopRuns(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []RunRecord{
		{RunID: "a", Score: 30, Ticks: 120, Reason: events.EndCollision, Duration: 9600 * time.Millisecond, FinishedAt: base},
		{RunID: "b", Score: 80, Ticks: 400, Reason: events.EndFuelExhausted, Duration: 32 * time.Second, FinishedAt: base.Add(time.Minute)},
		{RunID: "c", Score: 30, Ticks: 90, Reason: events.EndQuit, Duration: 7 * time.Second, FinishedAt: base.Add(2 * time.Minute)},
		{RunID: "d", Score: 10, Ticks: 20, Reason: events.EndCollision, Duration: time.Second, FinishedAt: base.Add(3 * time.Minute)},
	}
	runs[1].Cargo[components.ResourceIron] = 3
	runs[1].Cargo[components.ResourceCrystal] = 4
	runs[1].Cargo[components.ResourceGold] = 1

	for _, rec := range runs {
		if err := repo.SaveRun(ctx, rec); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", rec.RunID, err)
		}
	}

	top, err := repo.TopRuns(ctx, 3)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}

	// Ties go to the earlier run
	wantOrder := []string{"b", "a", "c"}
	if len(top) != len(wantOrder) {
		t.Fatalf("Expected %d runs, got %d", len(wantOrder), len(top))
	}
	for i, id := range wantOrder {
		if top[i].RunID != id {
			t.Errorf("Rank %d: expected %s, got %s", i+1, id, top[i].RunID)
		}
	}

	best := top[0]
	if best.Cargo != runs[1].Cargo {
		t.Errorf("Cargo round trip: expected %v, got %v", runs[1].Cargo, best.Cargo)
	}
	if best.Reason != events.EndFuelExhausted || best.Ticks != 400 || best.Duration != 32*time.Second {
		t.Errorf("Unexpected record %+v", best)
	}
	if !best.FinishedAt.Equal(runs[1].FinishedAt) {
		t.Errorf("FinishedAt: expected %v, got %v", runs[1].FinishedAt, best.FinishedAt)
	}

	n, err := repo.CountRuns(ctx)
	if err != nil || n != 4 {
		t.Errorf("CountRuns = %d, %v; want 4", n, err)
	}
}

func TestBestScore(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	best, err := repo.BestScore(ctx)
	if err != nil {
		t.Fatalf("BestScore on empty db failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 with no runs, got %d", best)
	}

	for i, score := range []int{20, 70, 40} {
		rec := RunRecord{RunID: string(rune('a' + i)), Score: score, FinishedAt: time.Now()}
		if err := repo.SaveRun(ctx, rec); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	if best, _ := repo.BestScore(ctx); best != 70 {
		t.Errorf("Expected best 70, got %d", best)
	}
}

func TestDuplicateRunRejected(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	rec := RunRecord{RunID: "same", Score: 10, FinishedAt: time.Now()}

	if err := repo.SaveRun(ctx, rec); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := repo.SaveRun(ctx, rec); err == nil {
		t.Error("Duplicate run id should fail")
	}
}

func TestClosedRepository(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Second close is a no-op
	if err := repo.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}

	ctx := context.Background()
	if err := repo.SaveRun(ctx, RunRecord{RunID: "x"}); !errors.Is(err, ErrClosed) {
		t.Errorf("SaveRun after close: expected ErrClosed, got %v", err)
	}
	if _, err := repo.TopRuns(ctx, 5); !errors.Is(err, ErrClosed) {
		t.Errorf("TopRuns after close: expected ErrClosed, got %v", err)
	}
	if _, err := repo.BestScore(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("BestScore after close: expected ErrClosed, got %v", err)
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	repo, err := OpenScoreRepository(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := repo.SaveRun(ctx, RunRecord{RunID: "persist", Score: 50, FinishedAt: time.Now()}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	repo.Close()

	repo, err = OpenScoreRepository(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer repo.Close()

	if best, _ := repo.BestScore(ctx); best != 50 {
		t.Errorf("Expected persisted best 50, got %d", best)
	}
}
