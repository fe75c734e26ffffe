package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VocabItem is one saved vocabulary entry.
type VocabItem struct {
	ID          string
	Lemma       string
	Translation string
	POS         string // verb, noun, adj, phrase, other
	Tags        []string
	CreatedAt   time.Time
}

// VocabRepo manages the learner's vocabulary list.
type VocabRepo interface {
	Add(ctx context.Context, item VocabItem) (VocabItem, error)
	List(ctx context.Context) ([]VocabItem, error)
	ListByPOS(ctx context.Context, pos ...string) ([]VocabItem, error)
	Delete(ctx context.Context, id string) error
}

type vocabRepo struct {
	db *sql.DB
}

func (r *vocabRepo) Add(ctx context.Context, item VocabItem) (VocabItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return VocabItem{}, fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO vocab (id, lemma, translation, pos, tags, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.Lemma, item.Translation, item.POS, string(tags), item.CreatedAt)
	if err != nil {
		return VocabItem{}, fmt.Errorf("insert vocab: %w", err)
	}
	return item, nil
}

func (r *vocabRepo) List(ctx context.Context) ([]VocabItem, error) {
	return r.query(ctx,
		`SELECT id, lemma, translation, pos, tags, created_at FROM vocab ORDER BY created_at`)
}

func (r *vocabRepo) ListByPOS(ctx context.Context, pos ...string) ([]VocabItem, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(pos))
	for _, p := range pos {
		want[p] = true
	}
	var out []VocabItem
	for _, item := range all {
		if want[item.POS] {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *vocabRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vocab WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete vocab %q: %w", id, err)
	}
	return nil
}

func (r *vocabRepo) query(ctx context.Context, q string, args ...any) ([]VocabItem, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query vocab: %w", err)
	}
	defer rows.Close()

	var out []VocabItem
	for rows.Next() {
		var item VocabItem
		var tags string
		if err := rows.Scan(&item.ID, &item.Lemma, &item.Translation, &item.POS, &tags, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vocab: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
			item.Tags = nil
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
