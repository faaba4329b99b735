package translator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// Translate rewrites input.Text against the dictionary.
//
// Terms are applied in ascending id order to the same evolving text, so a
// later term can match the output of an earlier one. Every term that fires
// gets its popularity bumped once. The first rune of the result is upper-cased
// and a history record is written even when nothing matched.
//
// Text that cannot be stored is rejected before anything is written.
// Writes are not transactional: a failed history write after successful
// popularity bumps is surfaced as an error and the bumps stay applied.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (*domain.TranslationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	terms, err := s.terms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load terms: %w", err)
	}

	translated := input.Text
	termsFound := make([]string, 0)

	for _, t := range terms {
		next, ok := replaceWholeWord(translated, t.Phrase, t.Translation)
		if !ok {
			continue
		}
		translated = next
		termsFound = append(termsFound, t.Phrase)

		if err := s.terms.IncrementPopularity(ctx, t.ID); err != nil {
			return nil, fmt.Errorf("increment popularity: %w", err)
		}
	}

	translated = capitalizeFirst(translated)

	record := &domain.TranslationRecord{
		ID:             uuid.Must(uuid.NewV7()),
		OriginalText:   input.Text,
		TranslatedText: translated,
		TermsFound:     termsFound,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.history.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("record translation: %w", err)
	}

	s.log.DebugContext(ctx, "text translated",
		slog.String("record_id", record.ID.String()),
		slog.Int("terms_found", len(termsFound)),
	)

	return &domain.TranslationResult{
		OriginalText:   input.Text,
		TranslatedText: translated,
		TermsFound:     termsFound,
	}, nil
}
