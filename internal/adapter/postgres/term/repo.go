// Package term implements the slang dictionary repository using PostgreSQL.
package term

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

const termColumns = "id, phrase, translation, category, popularity_score, created_at"

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new term repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listTermsSQL = `SELECT ` + termColumns + ` FROM terms ORDER BY id`

// List returns every term in ascending id order, which is insertion order.
// The translator relies on this order being stable.
func (r *Repo) List(ctx context.Context) ([]*domain.Term, error) {
	return r.query(ctx, "list terms", listTermsSQL)
}

const listTermsByPopularitySQL = `SELECT ` + termColumns + ` FROM terms ORDER BY popularity_score DESC, id`

// ListByPopularity returns every term, most popular first. Ties keep id order.
func (r *Repo) ListByPopularity(ctx context.Context) ([]*domain.Term, error) {
	return r.query(ctx, "list terms by popularity", listTermsByPopularitySQL)
}

// Search returns terms whose phrase or translation contains query, ignoring case.
func (r *Repo) Search(ctx context.Context, query string) ([]*domain.Term, error) {
	pattern := "%" + escapeLike(query) + "%"

	sql, args, err := psql.
		Select(termColumns).
		From("terms").
		Where(sq.Or{
			sq.ILike{"phrase": pattern},
			sq.ILike{"translation": pattern},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search terms query: %w", err)
	}

	return r.query(ctx, "search terms", sql, args...)
}

const existsByPhraseSQL = `SELECT EXISTS(SELECT 1 FROM terms WHERE lower(phrase) = lower($1))`

// ExistsByPhrase reports whether a term with the same phrase exists, ignoring case.
func (r *Repo) ExistsByPhrase(ctx context.Context, phrase string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsByPhraseSQL, phrase).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check term phrase: %w", err)
	}
	return exists, nil
}

func (r *Repo) query(ctx context.Context, op, sql string, args ...any) ([]*domain.Term, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	terms := make([]*domain.Term, 0)
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return terms, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createTermSQL = `
INSERT INTO terms (id, phrase, translation, category, popularity_score, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + termColumns

// Create inserts a new term and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createTermSQL,
		t.ID, t.Phrase, t.Translation, t.Category, t.PopularityScore, t.CreatedAt,
	)
	created, err := scanTerm(row)
	if err != nil {
		return nil, postgres.MapError(err, "term", t.ID)
	}
	return created, nil
}

const incrementPopularitySQL = `UPDATE terms SET popularity_score = popularity_score + 1 WHERE id = $1`

// IncrementPopularity bumps the popularity score by one in a single statement,
// so concurrent translations never lose an update.
func (r *Repo) IncrementPopularity(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementPopularitySQL, id)
	if err != nil {
		return postgres.MapError(err, "term", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanTerm(row pgx.Row) (*domain.Term, error) {
	var t domain.Term
	if err := row.Scan(&t.ID, &t.Phrase, &t.Translation, &t.Category, &t.PopularityScore, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so the query is matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
