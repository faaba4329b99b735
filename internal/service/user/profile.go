package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// Onboard creates the profile for input.UserID with a random persona tag and
// accent color. Handles are unique ignoring case; a taken handle or an
// existing profile returns ErrAlreadyExists.
func (s *Service) Onboard(ctx context.Context, input OnboardInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	bio := DefaultBio
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:          input.UserID,
		Handle:      strings.TrimSpace(input.Handle),
		PersonaTag:  s.randomFrom(s.personas),
		AccentColor: s.randomFrom(s.accents),
		Bio:         &bio,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Onboard: %w", err)
	}

	s.log.InfoContext(ctx, "profile onboarded",
		slog.String("user_id", user.ID.String()),
		slog.String("handle", user.Handle))

	return user, nil
}

// GetProfile returns the profile of userID.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the non-blank fields of input to the profile.
// With nothing to change it returns the current profile.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ProfileUpdateParams{
		PersonaTag:  trimOrNil(input.PersonaTag),
		AccentColor: trimOrNil(input.AccentColor),
		Bio:         trimOrNil(input.Bio),
	}
	if params.PersonaTag == nil && params.AccentColor == nil && params.Bio == nil {
		return s.GetProfile(ctx, input.UserID)
	}

	user, err := s.users.Update(ctx, input.UserID, params)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", input.UserID.String()))

	return user, nil
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
