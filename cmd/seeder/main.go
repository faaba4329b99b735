// Command seeder loads a YAML file of slang terms into the dictionary,
// skipping phrases that already exist. It is intended to be run offline,
// not as part of the main server.
//
// Flags:
//
//	--file           path to the terms YAML file (overrides config)
//	--dry-run        parse and check terms without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres"
	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/genz-translator-backend/internal/adapter/postgres/term"
	"github.com/heartmarshall/genz-translator-backend/internal/app"
	"github.com/heartmarshall/genz-translator-backend/internal/app/seeder"
	"github.com/heartmarshall/genz-translator-backend/internal/config"
	"github.com/heartmarshall/genz-translator-backend/internal/service/translator"
)

// Compile-time interface assertions.
var (
	_ seeder.TermLookup = (*term.Repo)(nil)
	_ seeder.TermAdder  = (*translator.Service)(nil)
)

func main() {
	fileFlag := flag.String("file", "", "path to the terms YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "check terms without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *fileFlag != "" {
		seederCfg.TermsPath = *fileFlag
	}

	terms, err := seeder.LoadFile(seederCfg.TermsPath)
	if err != nil {
		logger.Error("load seed terms", slog.String("path", seederCfg.TermsPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	termRepo := term.New(pool)
	svc := translator.NewService(logger, termRepo, history.New(pool), appCfg.Translator)

	if _, err := seeder.NewPipeline(logger, termRepo, svc, *seederCfg).Run(ctx, terms); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
