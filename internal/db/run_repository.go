package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollowmire/descent/internal/model"
)

// RunRecord is one persisted run: the denormalized leaderboard columns
// plus the full state snapshot.
type RunRecord struct {
	ID        string
	PathID    string
	Floor     int
	Room      int
	Level     int
	Gold      int
	Victory   bool
	Finished  bool
	State     model.GameState
	StartedAt time.Time
	UpdatedAt time.Time
}

// RunRepository stores run snapshots.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository creates a repository over the pool.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// SaveRun upserts a run snapshot by id.
func (r *RunRepository) SaveRun(ctx context.Context, rec RunRecord) error {
	snapshot, err := json.Marshal(rec.State)
	if err != nil {
		return fmt.Errorf("encoding run %q snapshot: %w", rec.ID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO runs (id, path_id, floor, room, level, gold, victory, finished, snapshot, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		 ON CONFLICT (id) DO UPDATE SET
		   floor = EXCLUDED.floor,
		   room = EXCLUDED.room,
		   level = EXCLUDED.level,
		   gold = EXCLUDED.gold,
		   victory = EXCLUDED.victory,
		   finished = EXCLUDED.finished,
		   snapshot = EXCLUDED.snapshot,
		   updated_at = now()`,
		rec.ID, rec.PathID, rec.Floor, rec.Room, rec.Level, rec.Gold,
		rec.Victory, rec.Finished, snapshot,
	)
	if err != nil {
		return fmt.Errorf("saving run %q: %w", rec.ID, err)
	}
	return nil
}

// LoadRun fetches a run by id. Returns nil, nil when it does not exist.
func (r *RunRepository) LoadRun(ctx context.Context, id string) (*RunRecord, error) {
	var (
		rec      RunRecord
		snapshot []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, path_id, floor, room, level, gold, victory, finished, snapshot, started_at, updated_at
		 FROM runs WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.PathID, &rec.Floor, &rec.Room, &rec.Level, &rec.Gold,
		&rec.Victory, &rec.Finished, &snapshot, &rec.StartedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying run %q: %w", id, err)
	}

	if err := json.Unmarshal(snapshot, &rec.State); err != nil {
		return nil, fmt.Errorf("decoding run %q snapshot: %w", id, err)
	}
	return &rec, nil
}

// TopRuns returns the best finished runs: victories first, then by
// floor and level reached.
func (r *RunRepository) TopRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, path_id, floor, room, level, gold, victory, finished, started_at, updated_at
		 FROM runs WHERE finished
		 ORDER BY victory DESC, floor DESC, level DESC, gold DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.PathID, &rec.Floor, &rec.Room, &rec.Level,
			&rec.Gold, &rec.Victory, &rec.Finished, &rec.StartedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run rows: %w", err)
	}
	return out, nil
}

// DeleteRun removes a run by id.
func (r *RunRepository) DeleteRun(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting run %q: %w", id, err)
	}
	return nil
}
