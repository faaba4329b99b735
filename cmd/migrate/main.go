// Command migrate applies pending goose migrations embedded in the binary.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/genz-translator-backend/internal/app"
	"github.com/heartmarshall/genz-translator-backend/internal/config"
	"github.com/heartmarshall/genz-translator-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("migrations up to date")
}
