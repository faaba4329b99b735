package translator

import (
	"context"
	"fmt"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// RecentHistory returns the latest translations, newest first.
func (s *Service) RecentHistory(ctx context.Context, input RecentHistoryInput) ([]*domain.TranslationRecord, error) {
	if err := input.Validate(s.cfg.MaxHistoryLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultHistoryLimit
	}

	records, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list translation history: %w", err)
	}
	return records, nil
}
