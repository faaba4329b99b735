// Package history implements the append-only translation log using PostgreSQL.
package history

import (
	"context"
	"fmt"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// Repo provides translation history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createRecordSQL = `
INSERT INTO translation_history (id, original_text, translated_text, terms_found, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Create appends a translation record. Records are never updated.
func (r *Repo) Create(ctx context.Context, rec *domain.TranslationRecord) error {
	termsFound := rec.TermsFound
	if termsFound == nil {
		termsFound = []string{}
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createRecordSQL,
		rec.ID, rec.OriginalText, rec.TranslatedText, termsFound, rec.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "translation_record", rec.ID)
	}
	return nil
}

const listRecentSQL = `
SELECT id, original_text, translated_text, terms_found, created_at
FROM translation_history
ORDER BY created_at DESC, id DESC
LIMIT $1`

// ListRecent returns up to limit records, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]*domain.TranslationRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list translation history: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.TranslationRecord, 0, limit)
	for rows.Next() {
		var rec domain.TranslationRecord
		if err := rows.Scan(&rec.ID, &rec.OriginalText, &rec.TranslatedText, &rec.TermsFound, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan translation record: %w", err)
		}
		if rec.TermsFound == nil {
			rec.TermsFound = []string{}
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list translation history: %w", err)
	}
	return records, nil
}
