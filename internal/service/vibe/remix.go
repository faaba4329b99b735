package vibe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// Remix appends a reply to a vibe's thread. The remix counter increment and
// the entry insert commit together.
func (s *Service) Remix(ctx context.Context, input RemixInput) (*domain.VibeView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.RemixEntry{
		ID:        uuid.Must(uuid.NewV7()),
		PostID:    input.PostID,
		AuthorID:  input.AuthorID,
		RemixText: strings.TrimSpace(input.Text),
		CreatedAt: time.Now().UTC(),
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.vibes.IncrementRemixCount(ctx, input.PostID); err != nil {
			return fmt.Errorf("increment remix count: %w", err)
		}
		if err := s.remixes.Create(ctx, entry); err != nil {
			return fmt.Errorf("create remix: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vibe remixed",
		slog.String("vibe_id", input.PostID.String()),
		slog.String("remix_id", entry.ID.String()),
		slog.String("author_id", input.AuthorID.String()),
	)

	return s.view(ctx, input.PostID)
}

// ListRemixes returns a vibe's thread, oldest first.
func (s *Service) ListRemixes(ctx context.Context, input ListRemixesInput) ([]*domain.RemixEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.vibes.Exists(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("check vibe: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("vibe %s: %w", input.PostID, domain.ErrNotFound)
	}

	entries, err := s.remixes.ListByPostID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("list remixes: %w", err)
	}
	return entries, nil
}
