// Package config loads configuration from the environment, with optional
// .env support for local development.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds settings for both the survey service and the form client.
type Config struct {
	// Server
	Addr         string
	Store        string // "csv" or "postgres"
	DatabaseURL  string
	DataDir      string
	EmployeesCSV string
	SurveyCSV    string
	CORSOrigin   string

	// Form client
	APIBaseURL string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	dataDir := env("DATA_DIR", "data")
	return Config{
		Addr:         env("ADDR", ":8080"),
		Store:        env("STORE", "csv"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DataDir:      dataDir,
		EmployeesCSV: env("EMPLOYEES_CSV", filepath.Join(dataDir, "employees.csv")),
		SurveyCSV:    env("SURVEY_CSV", filepath.Join(dataDir, "survey_responses.csv")),
		CORSOrigin:   env("CORS_ORIGIN", "http://localhost:3000"),
		APIBaseURL:   env("SURVEY_API_URL", "http://localhost:8080"),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
