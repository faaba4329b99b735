// Command resync recomputes every vibe's remix_count from its remix entries.
// Remix writes keep the counter in step transactionally; this is a repair
// tool for manual edits or restores. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
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
	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/vibe"
	"github.com/heartmarshall/genz-translator-backend/internal/app"
	"github.com/heartmarshall/genz-translator-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	fixed, err := vibe.New(pool).ResyncRemixCounts(ctx)
	if err != nil {
		logger.Error("remix count resync failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("remix count resync completed", slog.Int64("corrected", fixed))
}
