package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/service/user"
)

type profileService interface {
	Onboard(ctx context.Context, input user.OnboardInput) (*domain.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type onboardRequest struct {
	Handle string `json:"handle"`
}

type updateProfileRequest struct {
	PersonaTag  *string `json:"personaTag"`
	AccentColor *string `json:"accentColor"`
	Bio         *string `json:"bio"`
}

type profileResponse struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	PersonaTag  *string   `json:"personaTag"`
	AccentColor *string   `json:"accentColor"`
	Bio         *string   `json:"bio"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Onboard handles POST /api/profiles.
func (h *ProfileHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req onboardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Onboard(r.Context(), user.OnboardInput{UserID: userID, Handle: req.Handle})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(u))
}

// Me handles GET /api/profiles/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(u))
}

// UpdateMe handles PUT /api/profiles/me.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		UserID:      userID,
		PersonaTag:  req.PersonaTag,
		AccentColor: req.AccentColor,
		Bio:         req.Bio,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(u))
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:          u.ID.String(),
		Handle:      u.Handle,
		PersonaTag:  u.PersonaTag,
		AccentColor: u.AccentColor,
		Bio:         u.Bio,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
