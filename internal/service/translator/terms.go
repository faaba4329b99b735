package translator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// AddTerm adds a phrase to the dictionary. Duplicate phrases are accepted
// and scanned in id order during translation.
func (s *Service) AddTerm(ctx context.Context, input AddTermInput) (*domain.Term, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	term, err := s.terms.Create(ctx, &domain.Term{
		ID:          uuid.Must(uuid.NewV7()),
		Phrase:      strings.TrimSpace(input.Phrase),
		Translation: strings.TrimSpace(input.Translation),
		Category:    trimOrNil(input.Category),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create term: %w", err)
	}

	s.log.InfoContext(ctx, "term added",
		slog.String("term_id", term.ID.String()),
		slog.String("phrase", term.Phrase),
	)

	return term, nil
}

// ListTerms returns the whole dictionary in insertion order.
func (s *Service) ListTerms(ctx context.Context) ([]*domain.Term, error) {
	terms, err := s.terms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

// PopularTerms returns the whole dictionary, most popular first.
func (s *Service) PopularTerms(ctx context.Context) ([]*domain.Term, error) {
	terms, err := s.terms.ListByPopularity(ctx)
	if err != nil {
		return nil, fmt.Errorf("list popular terms: %w", err)
	}
	return terms, nil
}

// SearchTerms finds terms whose phrase or translation contains the query.
func (s *Service) SearchTerms(ctx context.Context, input SearchTermsInput) ([]*domain.Term, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	terms, err := s.terms.Search(ctx, strings.TrimSpace(input.Query))
	if err != nil {
		return nil, fmt.Errorf("search terms: %w", err)
	}
	return terms, nil
}
