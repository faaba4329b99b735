// Package pulse implements the reaction ledger using PostgreSQL.
package pulse

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides reaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new pulse repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	deletePulseSQL = `DELETE FROM vibe_pulses WHERE post_id = $1 AND user_id = $2 AND kind = $3`

	insertPulseSQL = `
INSERT INTO vibe_pulses (id, post_id, user_id, kind, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (post_id, user_id, kind) DO NOTHING`
)

// Toggle flips the (post, user, kind) entry: an existing entry is removed,
// a missing one is inserted. Returns true if the entry is present afterwards.
// Callers serialize toggles per post by holding the post row lock; the unique
// index keeps a racing insert from creating a duplicate.
func (r *Repo) Toggle(ctx context.Context, postID, userID uuid.UUID, kind domain.ReactionKind) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deletePulseSQL, postID, userID, string(kind))
	if err != nil {
		return false, postgres.MapError(err, "vibe_pulse", postID)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return false, fmt.Errorf("generate pulse id: %w", err)
	}

	if _, err := q.Exec(ctx, insertPulseSQL, id, postID, userID, string(kind), time.Now().UTC()); err != nil {
		return false, postgres.MapError(err, "vibe_pulse", postID)
	}
	return true, nil
}

// CountsByPostIDs returns reaction counts per post and kind for the given
// posts in a single query. Posts without reactions are absent from the map.
func (r *Repo) CountsByPostIDs(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]map[domain.ReactionKind]int, error) {
	counts := make(map[uuid.UUID]map[domain.ReactionKind]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	sql, args, err := psql.
		Select("post_id", "kind", "count(*)").
		From("vibe_pulses").
		Where(sq.Eq{"post_id": postIDs}).
		GroupBy("post_id", "kind").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pulse counts query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("count vibe_pulses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID uuid.UUID
			kind   string
			n      int64
		)
		if err := rows.Scan(&postID, &kind, &n); err != nil {
			return nil, fmt.Errorf("scan pulse count: %w", err)
		}
		byKind, ok := counts[postID]
		if !ok {
			byKind = make(map[domain.ReactionKind]int)
			counts[postID] = byKind
		}
		byKind[domain.ReactionKind(kind)] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count vibe_pulses: %w", err)
	}
	return counts, nil
}
