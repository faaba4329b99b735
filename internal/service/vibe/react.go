package vibe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// React toggles input.UserID's pulse of input.Kind on a vibe: an existing
// pulse is removed, a missing one is added. The post row is locked for the
// duration of the toggle so concurrent toggles on one post apply one at a time.
func (s *Service) React(ctx context.Context, input ReactInput) (*domain.VibeView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var active bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.vibes.LockByID(ctx, input.PostID); err != nil {
			return fmt.Errorf("lock vibe: %w", err)
		}

		var err error
		active, err = s.pulses.Toggle(ctx, input.PostID, input.UserID, input.Kind)
		if err != nil {
			return fmt.Errorf("toggle pulse: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pulse toggled",
		slog.String("vibe_id", input.PostID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("kind", input.Kind.String()),
		slog.Bool("active", active),
	)

	return s.view(ctx, input.PostID)
}
