// Package postgres implements the survey response repository using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the survey response repository.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS survey_responses (
			id BIGSERIAL PRIMARY KEY,
			submission_date TIMESTAMPTZ NOT NULL,
			employee_number TEXT NOT NULL,
			employee_name TEXT NOT NULL,
			gender TEXT NOT NULL,
			age INT NOT NULL,
			waist_circumference DOUBLE PRECISION NOT NULL,
			height_feet INT NOT NULL,
			height_inches INT NOT NULL,
			weight DOUBLE PRECISION NOT NULL,
			bmi DOUBLE PRECISION NOT NULL,
			bmi_category TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_survey_responses_submission_date ON survey_responses(submission_date);`,
		`CREATE INDEX IF NOT EXISTS idx_survey_responses_employee_number ON survey_responses(employee_number);`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
