package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/history"
	pulserepo "github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/pulse"
	remixrepo "github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/remix"
	termrepo "github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/term"
	userrepo "github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/user"
	viberepo "github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/vibe"
	"github.com/heartmarshall/genz-translator-backend/internal/auth"
	"github.com/heartmarshall/genz-translator-backend/internal/config"
	"github.com/heartmarshall/genz-translator-backend/internal/service/translator"
	"github.com/heartmarshall/genz-translator-backend/internal/service/user"
	"github.com/heartmarshall/genz-translator-backend/internal/service/vibe"
	"github.com/heartmarshall/genz-translator-backend/internal/transport/middleware"
	"github.com/heartmarshall/genz-translator-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and handlers into the HTTP router.
// The returned cleanup stops background workers and must be called on shutdown.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func()) {
	// Repositories
	terms := termrepo.New(pool)
	history := historyrepo.New(pool)
	users := userrepo.New(pool)
	vibes := viberepo.New(pool)
	pulses := pulserepo.New(pool)
	remixes := remixrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services
	translatorSvc := translator.NewService(logger, terms, history, cfg.Translator)
	vibeSvc := vibe.NewService(logger, vibes, pulses, remixes, users, tx, cfg.Community)
	userSvc := user.NewService(logger, users, cfg.Community)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.RateLimit.IdleTTL)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:          logger,
		CORS:            cfg.CORS,
		Tokens:          jwt,
		Authors:         users,
		RateLimiter:     limiter,
		WritesPerMinute: cfg.RateLimit.WritesPerMinute,
		Health:          rest.NewHealthHandler(pool, BuildVersion()),
		Translator:      rest.NewTranslatorHandler(translatorSvc, logger),
		Vibes:           rest.NewVibeHandler(vibeSvc, logger),
		Profiles:        rest.NewProfileHandler(userSvc, logger),
	})

	return router, limiter.Stop
}
