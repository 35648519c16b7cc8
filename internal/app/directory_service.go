package app

import (
	"context"

	"healthsurvey/internal/domain"
)

// DirectoryService exposes the employee directory.
type DirectoryService struct {
	dir domain.EmployeeDirectory
}

// NewDirectoryService creates a DirectoryService backed by the given
// directory.
func NewDirectoryService(dir domain.EmployeeDirectory) *DirectoryService {
	return &DirectoryService{dir: dir}
}

// ListEmployees returns the directory with employee numbers normalized
// to their 8-digit zero-padded form.
func (s *DirectoryService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.dir.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		e.EmployeeNumber = domain.NormalizeEmployeeNumber(e.EmployeeNumber)
		out = append(out, e)
	}
	return out, nil
}
