// Package vibe implements the vibe post repository using PostgreSQL.
package vibe

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const vibeColumns = "id, author_id, original_text, translated_text, insight, persona_tag, accent_color, " +
	"tags, visibility, remix_count, created_at, updated_at"

const (
	defaultLimit = 50
	maxLimit     = 50
)

// Repo provides vibe post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vibe repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getVibeByIDSQL = `SELECT ` + vibeColumns + ` FROM vibe_posts WHERE id = $1`

// GetByID returns a post by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VibePost, error) {
	p, err := scanVibe(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getVibeByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "vibe_post", id)
	}
	return p, nil
}

const vibeExistsSQL = `SELECT EXISTS(SELECT 1 FROM vibe_posts WHERE id = $1)`

// Exists reports whether a post with id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, vibeExistsSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "vibe_post", id)
	}
	return exists, nil
}

const lockVibeSQL = `SELECT id FROM vibe_posts WHERE id = $1 FOR NO KEY UPDATE`

// LockByID takes a row lock on the post for the rest of the surrounding
// transaction. Returns domain.ErrNotFound if the post does not exist.
// Must be called inside TxManager.RunInTx.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, lockVibeSQL, id).Scan(&locked); err != nil {
		return postgres.MapError(err, "vibe_post", id)
	}
	return nil
}

// List returns posts matching every non-nil filter field, newest first.
// Persona and tag comparisons ignore case. Limit is clamped to 50.
func (r *Repo) List(ctx context.Context, f domain.VibeFilter) ([]*domain.VibePost, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	b := psql.Select(vibeColumns).From("vibe_posts")

	if f.Persona != nil {
		b = b.Where("lower(persona_tag) = ?", strings.ToLower(strings.TrimSpace(*f.Persona)))
	}
	if f.Tag != nil {
		b = b.Where("? = ANY(tags)", strings.ToLower(strings.TrimSpace(*f.Tag)))
	}
	if f.Visibility != nil {
		b = b.Where("visibility = ?", string(*f.Visibility))
	}

	sql, args, err := b.OrderBy("created_at DESC", "id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build feed query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list vibe_posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.VibePost, 0, limit)
	for rows.Next() {
		p, err := scanVibe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vibe_post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vibe_posts: %w", err)
	}
	return posts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createVibeSQL = `
INSERT INTO vibe_posts (id, author_id, original_text, translated_text, insight, persona_tag,
                        accent_color, tags, visibility, remix_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10, $11)
RETURNING ` + vibeColumns

// Create inserts a post with a zero remix count and returns the persisted row.
// An unknown author returns domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, p *domain.VibePost) (*domain.VibePost, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	created, err := scanVibe(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createVibeSQL,
		p.ID, p.AuthorID, p.OriginalText, p.TranslatedText, p.Insight, p.PersonaTag,
		p.AccentColor, tags, string(p.Visibility), p.CreatedAt, p.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "vibe_post", p.ID)
	}
	return created, nil
}

const incrementRemixCountSQL = `
UPDATE vibe_posts SET remix_count = remix_count + 1, updated_at = now() WHERE id = $1`

// IncrementRemixCount bumps the cached remix counter by one.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) IncrementRemixCount(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementRemixCountSQL, id)
	if err != nil {
		return postgres.MapError(err, "vibe_post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vibe_post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const resyncRemixCountsSQL = `
UPDATE vibe_posts p
SET remix_count = c.cnt, updated_at = now()
FROM (
    SELECT vp.id, count(re.id) AS cnt
    FROM vibe_posts vp
    LEFT JOIN remix_entries re ON re.post_id = vp.id
    GROUP BY vp.id
) c
WHERE p.id = c.id AND p.remix_count <> c.cnt`

// ResyncRemixCounts recomputes remix_count from remix entries for every post
// whose cached value drifted. Returns the number of corrected posts.
func (r *Repo) ResyncRemixCounts(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, resyncRemixCountsSQL)
	if err != nil {
		return 0, fmt.Errorf("resync remix counts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanVibe(row pgx.Row) (*domain.VibePost, error) {
	var (
		p          domain.VibePost
		visibility string
	)
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.OriginalText, &p.TranslatedText, &p.Insight, &p.PersonaTag,
		&p.AccentColor, &p.Tags, &visibility, &p.RemixCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Visibility = domain.Visibility(visibility)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}
