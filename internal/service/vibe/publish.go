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

// Publish stores a new vibe for input.AuthorID. The author's persona tag and
// accent color are copied onto the post; later profile edits do not change it.
// The author must have a profile.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*domain.VibeView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, input.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("get author profile: %w", err)
	}

	visibility := domain.VisibilityPublic
	if input.Visibility != nil {
		visibility = *input.Visibility
	}

	now := time.Now().UTC()
	post, err := s.vibes.Create(ctx, &domain.VibePost{
		ID:             uuid.Must(uuid.NewV7()),
		AuthorID:       author.ID,
		OriginalText:   strings.TrimSpace(input.OriginalText),
		TranslatedText: strings.TrimSpace(input.TranslatedText),
		Insight:        trimOrNil(input.Insight),
		PersonaTag:     cloneString(author.PersonaTag),
		AccentColor:    cloneString(author.AccentColor),
		Tags:           domain.NormalizeTags(input.Tags),
		Visibility:     visibility,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("create vibe: %w", err)
	}

	s.log.InfoContext(ctx, "vibe published",
		slog.String("vibe_id", post.ID.String()),
		slog.String("author_id", post.AuthorID.String()),
		slog.String("visibility", post.Visibility.String()),
	)

	return &domain.VibeView{Post: *post, Pulses: map[domain.ReactionKind]int{}}, nil
}
