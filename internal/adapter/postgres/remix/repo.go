// Package remix implements the per-post remix thread using PostgreSQL.
package remix

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// Repo provides remix entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new remix repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createRemixSQL = `
INSERT INTO remix_entries (id, post_id, author_id, remix_text, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Create appends a remix entry. An unknown post returns domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, e *domain.RemixEntry) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createRemixSQL,
		e.ID, e.PostID, e.AuthorID, e.RemixText, e.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "remix_entry", e.PostID)
	}
	return nil
}

const listRemixesSQL = `
SELECT id, post_id, author_id, remix_text, created_at
FROM remix_entries
WHERE post_id = $1
ORDER BY created_at, id`

// ListByPostID returns the thread for a post, oldest first.
func (r *Repo) ListByPostID(ctx context.Context, postID uuid.UUID) ([]*domain.RemixEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listRemixesSQL, postID)
	if err != nil {
		return nil, fmt.Errorf("list remix_entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.RemixEntry, 0)
	for rows.Next() {
		var e domain.RemixEntry
		if err := rows.Scan(&e.ID, &e.PostID, &e.AuthorID, &e.RemixText, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan remix_entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list remix_entries: %w", err)
	}
	return entries, nil
}
