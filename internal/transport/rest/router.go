package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/config"
	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/transport/middleware"
	"github.com/heartmarshall/genz-translator-backend/internal/transport/rest/dataloader"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

type authorRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

// RouterDeps wires handlers and cross-cutting concerns into the router.
type RouterDeps struct {
	Logger          *slog.Logger
	CORS            config.CORSConfig
	Tokens          tokenValidator
	Authors         authorRepo
	RateLimiter     *middleware.RateLimiter // nil disables write limiting
	WritesPerMinute int

	Health     *HealthHandler
	Translator *TranslatorHandler
	Vibes      *VibeHandler
	Profiles   *ProfileHandler
}

// NewRouter builds the HTTP handler for the whole API.
// Middleware order: Recovery, RequestID, CORS, Auth, Logger.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
	)

	limit := middleware.Chain()
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Limit(d.WritesPerMinute)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/translate", d.Translator.TranslateQuery)
		r.With(limit).Post("/translate", d.Translator.Translate)

		r.Get("/terms", d.Translator.ListTerms)
		r.Get("/terms/popular", d.Translator.PopularTerms)
		r.Get("/terms/search", d.Translator.SearchTerms)
		r.With(limit).Post("/terms", d.Translator.AddTerm)

		r.Get("/history", d.Translator.RecentHistory)

		r.Route("/profiles", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.With(limit).Post("/", d.Profiles.Onboard)
			r.Get("/me", d.Profiles.Me)
			r.With(limit).Put("/me", d.Profiles.UpdateMe)
		})

		r.Route("/community", func(r chi.Router) {
			r.Use(dataloader.Middleware(d.Authors))

			r.Get("/pulse-types", d.Vibes.PulseTypes)
			r.Get("/vibes", d.Vibes.Feed)
			r.Get("/vibes/{id}/remixes", d.Vibes.ListRemixes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser, limit)
				r.Post("/vibes", d.Vibes.Publish)
				r.Post("/vibes/{id}/react", d.Vibes.React)
				r.Post("/vibes/{id}/remix", d.Vibes.Remix)
			})
		})
	})

	return r
}
