// Package translator implements the term substitution engine and the slang
// dictionary operations built on top of it.
package translator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/config"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// termRepo defines the dictionary storage needed by the translator.
type termRepo interface {
	List(ctx context.Context) ([]*domain.Term, error)
	ListByPopularity(ctx context.Context) ([]*domain.Term, error)
	Search(ctx context.Context, query string) ([]*domain.Term, error)
	Create(ctx context.Context, t *domain.Term) (*domain.Term, error)
	IncrementPopularity(ctx context.Context, id uuid.UUID) error
}

// historyRepo defines the translation log needed by the translator.
type historyRepo interface {
	Create(ctx context.Context, rec *domain.TranslationRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.TranslationRecord, error)
}

// Service translates text against the term dictionary.
type Service struct {
	log     *slog.Logger
	terms   termRepo
	history historyRepo
	cfg     config.TranslatorConfig
}

// NewService creates a new translator service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	history historyRepo,
	cfg config.TranslatorConfig,
) *Service {
	return &Service{
		log:     log.With("service", "translator"),
		terms:   terms,
		history: history,
		cfg:     cfg,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
