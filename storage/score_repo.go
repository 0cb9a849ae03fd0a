package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/events"
)

// ErrClosed is returned by repository calls after Close
var ErrClosed = errors.New("score repository closed")

// RunRecord is one finished run
type RunRecord struct {
	RunID      string
	Score      int
	Cargo      components.Cargo
	Ticks      uint64
	Reason     events.EndReason
	Duration   time.Duration
	FinishedAt time.Time
}

// ScoreRepository stores and ranks finished runs
type ScoreRepository struct {
	db     *sql.DB
	closed atomic.Bool
}

// NewScoreRepository wraps an initialized database
func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// OpenScoreRepository initializes the database at path and wraps it
func OpenScoreRepository(path string) (*ScoreRepository, error) {
	db, err := InitSQLite(path)
	if err != nil {
		return nil, err
	}
	return NewScoreRepository(db), nil
}

// Close releases the database, later calls return ErrClosed
func (r *ScoreRepository) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.db.Close()
}

// SaveRun inserts a finished run
func (r *ScoreRepository) SaveRun(ctx context.Context, rec RunRecord) error {
	if r.closed.Load() {
		return ErrClosed
	}

	query := `
		INSERT INTO runs (run_id, score, iron, crystal, gold, ticks, end_reason, duration_ms, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.RunID,
		rec.Score,
		rec.Cargo[components.ResourceIron],
		rec.Cargo[components.ResourceCrystal],
		rec.Cargo[components.ResourceGold],
		int64(rec.Ticks),
		rec.Reason.String(),
		rec.Duration.Milliseconds(),
		rec.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", rec.RunID, err)
	}
	return nil
}

// TopRuns returns up to limit runs by score, earlier runs win ties
func (r *ScoreRepository) TopRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if r.closed.Load() {
		return nil, ErrClosed
	}
	if limit <= 0 {
		return nil, nil
	}

	query := `
		SELECT run_id, score, iron, crystal, gold, ticks, end_reason, duration_ms, finished_at
		FROM runs
		ORDER BY score DESC, finished_at ASC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var (
			rec                  RunRecord
			ticks                int64
			reason               string
			durationMs, finished int64
		)
		if err := rows.Scan(
			&rec.RunID,
			&rec.Score,
			&rec.Cargo[components.ResourceIron],
			&rec.Cargo[components.ResourceCrystal],
			&rec.Cargo[components.ResourceGold],
			&ticks,
			&reason,
			&durationMs,
			&finished,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.Ticks = uint64(ticks)
		rec.Reason = events.ParseEndReason(reason)
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.FinishedAt = time.UnixMilli(finished)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return records, nil
}

// BestScore returns the highest recorded score, 0 with no runs
func (r *ScoreRepository) BestScore(ctx context.Context) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	var best sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(score) FROM runs`).Scan(&best); err != nil {
		return 0, fmt.Errorf("failed to query best score: %w", err)
	}
	return int(best.Int64), nil
}

// CountRuns returns the number of stored runs
func (r *ScoreRepository) CountRuns(ctx context.Context) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}
