package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"healthsurvey/internal/adapter/csvstore"
	adapthttp "healthsurvey/internal/adapter/http"
	"healthsurvey/internal/adapter/postgres"
	"healthsurvey/internal/app"
	"healthsurvey/internal/config"
	"healthsurvey/internal/domain"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	directory := csvstore.NewDirectory(cfg.EmployeesCSV)
	if err := directory.EnsureSeed(); err != nil {
		log.Fatalf("seed employee directory: %v", err)
	}

	var responses domain.ResponseRepository
	switch cfg.Store {
	case "postgres":
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required when STORE=postgres")
		}
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		responses = db
	default:
		responses = csvstore.NewResponseStore(cfg.SurveyCSV)
	}

	directorySvc := app.NewDirectoryService(directory)
	surveySvc := app.NewSurveyService(directory, responses)
	statsSvc := app.NewStatsService(responses)

	h := adapthttp.New(directorySvc, surveySvc, statsSvc, cfg.CORSOrigin).Handler()
	log.Printf("listening on %s (store=%s)", cfg.Addr, cfg.Store)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
