package user

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/config"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProfileUpdateParams) (*domain.User, error)
}

// DefaultBio is assigned to freshly onboarded profiles.
const DefaultBio = "Freshly onboarded, ready to decode vibes."

// Service implements profile onboarding and editing.
type Service struct {
	log      *slog.Logger
	users    userRepo
	personas []string
	accents  []string
	pick     func(n int) int
}

// NewService creates a new user service instance. Persona tags and accent
// colors for new profiles are drawn from the community libraries.
func NewService(
	logger *slog.Logger,
	users userRepo,
	cfg config.CommunityConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		personas: cfg.PersonaLibrary,
		accents:  cfg.AccentLibrary,
		pick:     rand.IntN,
	}
}

// randomFrom returns a random element of lib, or nil if lib is empty.
func (s *Service) randomFrom(lib []string) *string {
	if len(lib) == 0 {
		return nil
	}
	v := lib[s.pick(len(lib))]
	return &v
}
