package vibe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// view loads one post and its current pulse counts.
func (s *Service) view(ctx context.Context, id uuid.UUID) (*domain.VibeView, error) {
	post, err := s.vibes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vibe: %w", err)
	}

	views, err := s.assemble(ctx, []*domain.VibePost{post})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// assemble attaches pulse counts to posts with a single batched read.
// Posts without pulses get an empty, non-nil map.
func (s *Service) assemble(ctx context.Context, posts []*domain.VibePost) ([]*domain.VibeView, error) {
	views := make([]*domain.VibeView, 0, len(posts))
	if len(posts) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	counts, err := s.pulses.CountsByPostIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count pulses: %w", err)
	}

	for _, p := range posts {
		pulses := counts[p.ID]
		if pulses == nil {
			pulses = map[domain.ReactionKind]int{}
		}
		views = append(views, &domain.VibeView{Post: *p, Pulses: pulses})
	}
	return views, nil
}
