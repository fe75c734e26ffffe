package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Strength tuning. New items start at 0.25; a correct answer nudges the
// strength up, a wrong one pulls it down harder, clamped to [0, 1].
const (
	strengthStart     = 0.25
	strengthOnCorrect = 0.10
	strengthOnWrong   = 0.18
)

// Progress is the per-item learning record.
type Progress struct {
	ItemID   string
	Strength float64
	Seen     int
	Correct  int
}

// ProgressRepo tracks per-item strength. It is a plain counter update,
// not a review scheduler.
type ProgressRepo interface {
	// Apply records one answer for the item, creating the record on
	// first sight, and returns the updated progress.
	Apply(ctx context.Context, itemID string, correct bool) (Progress, error)

	// Get returns the record for the item, or a fresh default.
	Get(ctx context.Context, itemID string) (Progress, error)

	// All returns every progress record.
	All(ctx context.Context) ([]Progress, error)
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Apply(ctx context.Context, itemID string, correct bool) (Progress, error) {
	p, err := r.Get(ctx, itemID)
	if err != nil {
		return Progress{}, err
	}

	p.Seen++
	if correct {
		p.Correct++
		p.Strength += strengthOnCorrect
	} else {
		p.Strength -= strengthOnWrong
	}
	if p.Strength > 1 {
		p.Strength = 1
	}
	if p.Strength < 0 {
		p.Strength = 0
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress (item_id, strength, seen, correct) VALUES (?, ?, ?, ?)
		 ON CONFLICT(item_id) DO UPDATE SET
		   strength = excluded.strength, seen = excluded.seen, correct = excluded.correct`,
		p.ItemID, p.Strength, p.Seen, p.Correct)
	if err != nil {
		return Progress{}, fmt.Errorf("upsert progress %q: %w", itemID, err)
	}
	return p, nil
}

func (r *progressRepo) Get(ctx context.Context, itemID string) (Progress, error) {
	p := Progress{ItemID: itemID, Strength: strengthStart}
	err := r.db.QueryRowContext(ctx,
		`SELECT strength, seen, correct FROM progress WHERE item_id = ?`, itemID).
		Scan(&p.Strength, &p.Seen, &p.Correct)
	if err == sql.ErrNoRows {
		return p, nil
	}
	if err != nil {
		return Progress{}, fmt.Errorf("get progress %q: %w", itemID, err)
	}
	return p, nil
}

func (r *progressRepo) All(ctx context.Context) ([]Progress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id, strength, seen, correct FROM progress ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var out []Progress
	for rows.Next() {
		var p Progress
		if err := rows.Scan(&p.ItemID, &p.Strength, &p.Seen, &p.Correct); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
