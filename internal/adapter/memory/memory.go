// Package memory implements in-memory stores for development and testing.
package memory

import (
	"context"
	"sync"

	"healthsurvey/internal/domain"
)

// DB implements the directory and response ports over in-memory slices.
type DB struct {
	mu        sync.Mutex
	employees []domain.Employee
	responses []domain.Response
}

// New creates an in-memory store pre-populated with the given employees.
func New(employees ...domain.Employee) *DB {
	return &DB{employees: employees}
}

// Ensure interfaces are met.
var _ domain.EmployeeDirectory = (*DB)(nil)
var _ domain.ResponseRepository = (*DB)(nil)

// ListEmployees returns the directory.
func (db *DB) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Employee, len(db.employees))
	copy(out, db.employees)
	return out, nil
}

// AppendResponse stores one survey response.
func (db *DB) AppendResponse(ctx context.Context, r domain.Response) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.responses = append(db.responses, r)
	return nil
}

// ListResponses returns stored responses in insertion order.
func (db *DB) ListResponses(ctx context.Context) ([]domain.Response, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Response, len(db.responses))
	copy(out, db.responses)
	return out, nil
}
