package vibe

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// Feed returns the newest vibes matching every present filter, capped at the
// configured feed limit. Persona and tag comparisons ignore case.
func (s *Service) Feed(ctx context.Context, input FeedInput) ([]*domain.VibeView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.VibeFilter{
		Persona:    trimOrNil(input.Persona),
		Tag:        trimOrNil(input.Tag),
		Visibility: input.Visibility,
		Limit:      s.cfg.FeedLimit,
	}
	if filter.Tag != nil {
		tag := strings.ToLower(*filter.Tag)
		filter.Tag = &tag
	}

	posts, err := s.vibes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list vibes: %w", err)
	}

	return s.assemble(ctx, posts)
}
