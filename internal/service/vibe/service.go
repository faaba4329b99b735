// Package vibe implements the community engagement engine: publishing
// translated vibes, the filtered feed, pulse toggles and remix threads.
package vibe

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/config"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

type vibeRepo interface {
	Create(ctx context.Context, p *domain.VibePost) (*domain.VibePost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VibePost, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	LockByID(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.VibeFilter) ([]*domain.VibePost, error)
	IncrementRemixCount(ctx context.Context, id uuid.UUID) error
}

type pulseRepo interface {
	Toggle(ctx context.Context, postID, userID uuid.UUID, kind domain.ReactionKind) (bool, error)
	CountsByPostIDs(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]map[domain.ReactionKind]int, error)
}

type remixRepo interface {
	Create(ctx context.Context, e *domain.RemixEntry) error
	ListByPostID(ctx context.Context, postID uuid.UUID) ([]*domain.RemixEntry, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides vibe publishing and engagement operations.
type Service struct {
	vibes   vibeRepo
	pulses  pulseRepo
	remixes remixRepo
	users   userRepo
	tx      txManager
	cfg     config.CommunityConfig
	log     *slog.Logger
}

// NewService creates a new vibe service.
func NewService(
	log *slog.Logger,
	vibes vibeRepo,
	pulses pulseRepo,
	remixes remixRepo,
	users userRepo,
	tx txManager,
	cfg config.CommunityConfig,
) *Service {
	return &Service{
		vibes:   vibes,
		pulses:  pulses,
		remixes: remixes,
		users:   users,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "vibe"),
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

// cloneString returns an independent copy of s.
func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
