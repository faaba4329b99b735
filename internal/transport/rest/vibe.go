package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/service/vibe"
	"github.com/heartmarshall/genz-translator-backend/internal/transport/rest/dataloader"
)

type vibeService interface {
	Publish(ctx context.Context, input vibe.PublishInput) (*domain.VibeView, error)
	Feed(ctx context.Context, input vibe.FeedInput) ([]*domain.VibeView, error)
	React(ctx context.Context, input vibe.ReactInput) (*domain.VibeView, error)
	Remix(ctx context.Context, input vibe.RemixInput) (*domain.VibeView, error)
	ListRemixes(ctx context.Context, input vibe.ListRemixesInput) ([]*domain.RemixEntry, error)
}

// VibeHandler serves the community feed endpoints.
type VibeHandler struct {
	svc vibeService
	log *slog.Logger
}

// NewVibeHandler creates a VibeHandler.
func NewVibeHandler(svc vibeService, logger *slog.Logger) *VibeHandler {
	return &VibeHandler{svc: svc, log: logger.With("handler", "vibe")}
}

type publishRequest struct {
	OriginalText   string   `json:"originalText"`
	TranslatedText string   `json:"translatedText"`
	Insight        *string  `json:"insight"`
	Tags           []string `json:"tags"`
	Visibility     *string  `json:"visibility"`
}

type reactRequest struct {
	PulseType string `json:"pulseType"`
}

type remixRequest struct {
	RemixText string `json:"remixText"`
}

type vibeResponse struct {
	ID             string         `json:"id"`
	AuthorID       string         `json:"authorId"`
	AuthorHandle   *string        `json:"authorHandle"`
	OriginalText   string         `json:"originalText"`
	TranslatedText string         `json:"translatedText"`
	Insight        *string        `json:"insight"`
	PersonaTag     *string        `json:"personaTag"`
	AccentColor    *string        `json:"accentColor"`
	Tags           []string       `json:"tags"`
	Visibility     string         `json:"visibility"`
	RemixCount     int            `json:"remixCount"`
	Pulses         map[string]int `json:"pulses"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type remixResponse struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	AuthorID     string    `json:"authorId"`
	AuthorHandle *string   `json:"authorHandle"`
	PersonaTag   *string   `json:"personaTag"`
	RemixText    string    `json:"remixText"`
	CreatedAt    time.Time `json:"createdAt"`
}

type pulseTypeResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// Publish handles POST /api/community/vibes.
func (h *VibeHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req publishRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var visibility *domain.Visibility
	if req.Visibility != nil {
		v := domain.Visibility(*req.Visibility)
		visibility = &v
	}

	view, err := h.svc.Publish(r.Context(), vibe.PublishInput{
		AuthorID:       userID,
		OriginalText:   req.OriginalText,
		TranslatedText: req.TranslatedText,
		Insight:        req.Insight,
		Tags:           req.Tags,
		Visibility:     visibility,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeVibe(w, r, http.StatusCreated, view)
}

// Feed handles GET /api/community/vibes?persona=&tag=&visibility=.
func (h *VibeHandler) Feed(w http.ResponseWriter, r *http.Request) {
	input := vibe.FeedInput{
		Persona: queryOptional(r, "persona"),
		Tag:     queryOptional(r, "tag"),
	}
	if v := queryOptional(r, "visibility"); v != nil {
		vis := domain.Visibility(*v)
		input.Visibility = &vis
	}

	views, err := h.svc.Feed(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out, err := h.render(r, views)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// React handles POST /api/community/vibes/{id}/react.
func (h *VibeHandler) React(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	postID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req reactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.svc.React(r.Context(), vibe.ReactInput{
		PostID: postID,
		UserID: userID,
		Kind:   domain.ReactionKind(req.PulseType),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeVibe(w, r, http.StatusOK, view)
}

// Remix handles POST /api/community/vibes/{id}/remix.
func (h *VibeHandler) Remix(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	postID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req remixRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.svc.Remix(r.Context(), vibe.RemixInput{
		PostID:   postID,
		AuthorID: userID,
		Text:     req.RemixText,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeVibe(w, r, http.StatusOK, view)
}

// ListRemixes handles GET /api/community/vibes/{id}/remixes.
func (h *VibeHandler) ListRemixes(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.ListRemixes(r.Context(), vibe.ListRemixesInput{PostID: postID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.AuthorID
	}
	authors, err := dataloader.FromContext(r.Context()).LoadUsers(r.Context(), ids)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]remixResponse, len(entries))
	for i, e := range entries {
		out[i] = remixResponse{
			ID:        e.ID.String(),
			PostID:    e.PostID.String(),
			AuthorID:  e.AuthorID.String(),
			RemixText: e.RemixText,
			CreatedAt: e.CreatedAt,
		}
		if u, ok := authors[e.AuthorID]; ok {
			out[i].AuthorHandle = &u.Handle
			out[i].PersonaTag = u.PersonaTag
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// PulseTypes handles GET /api/community/pulse-types.
func (h *VibeHandler) PulseTypes(w http.ResponseWriter, _ *http.Request) {
	out := make([]pulseTypeResponse, len(domain.ReactionKinds))
	for i, k := range domain.ReactionKinds {
		out[i] = pulseTypeResponse{Type: k.String(), Label: k.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}

// writeVibe renders a single view with its author handle.
func (h *VibeHandler) writeVibe(w http.ResponseWriter, r *http.Request, status int, view *domain.VibeView) {
	out, err := h.render(r, []*domain.VibeView{view})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, out[0])
}

// render resolves author handles for all views in one batch.
func (h *VibeHandler) render(r *http.Request, views []*domain.VibeView) ([]vibeResponse, error) {
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.Post.AuthorID
	}
	authors, err := dataloader.FromContext(r.Context()).LoadUsers(r.Context(), ids)
	if err != nil {
		return nil, err
	}

	out := make([]vibeResponse, len(views))
	for i, v := range views {
		out[i] = toVibeResponse(v, authors[v.Post.AuthorID])
	}
	return out, nil
}

func toVibeResponse(v *domain.VibeView, author *domain.User) vibeResponse {
	p := v.Post
	resp := vibeResponse{
		ID:             p.ID.String(),
		AuthorID:       p.AuthorID.String(),
		OriginalText:   p.OriginalText,
		TranslatedText: p.TranslatedText,
		Insight:        p.Insight,
		PersonaTag:     p.PersonaTag,
		AccentColor:    p.AccentColor,
		Tags:           nonNil(p.Tags),
		Visibility:     p.Visibility.String(),
		RemixCount:     p.RemixCount,
		Pulses:         make(map[string]int, len(v.Pulses)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for k, n := range v.Pulses {
		resp.Pulses[k.String()] = n
	}
	if author != nil {
		resp.AuthorHandle = &author.Handle
	}
	return resp
}
