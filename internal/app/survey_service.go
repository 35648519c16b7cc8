package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthsurvey/internal/domain"
)

// ErrUnknownEmployee is returned when a submission names an employee
// number that is not in the directory.
var ErrUnknownEmployee = errors.New("invalid employee number")

// SurveyService encapsulates survey submission and retrieval use cases.
type SurveyService struct {
	dir  domain.EmployeeDirectory
	repo domain.ResponseRepository
	now  func() time.Time
}

// NewSurveyService creates a SurveyService backed by the given directory
// and response store.
func NewSurveyService(dir domain.EmployeeDirectory, repo domain.ResponseRepository) *SurveyService {
	return &SurveyService{dir: dir, repo: repo, now: time.Now}
}

// SubmitSurvey validates the submission's employee against the
// directory, stamps the submission date, rounds the BMI to one decimal
// and stores the response.
func (s *SurveyService) SubmitSurvey(ctx context.Context, sub domain.Submission) (domain.Response, error) {
	number := domain.NormalizeEmployeeNumber(sub.EmployeeNumber)

	employees, err := s.dir.ListEmployees(ctx)
	if err != nil {
		return domain.Response{}, fmt.Errorf("load employee directory: %w", err)
	}
	known := false
	for _, e := range employees {
		if domain.NormalizeEmployeeNumber(e.EmployeeNumber) == number {
			known = true
			break
		}
	}
	if !known {
		return domain.Response{}, ErrUnknownEmployee
	}

	r := domain.Response{
		SubmissionDate:     s.now().In(time.Local).Format(domain.SubmissionDateFormat),
		EmployeeNumber:     number,
		EmployeeName:       sub.EmployeeName,
		Gender:             sub.Gender,
		Age:                sub.Age,
		WaistCircumference: sub.WaistCircumference,
		HeightFeet:         sub.HeightFeet,
		HeightInches:       sub.HeightInches,
		Weight:             sub.Weight,
		BMI:                domain.RoundBMI(sub.BMI),
		BMICategory:        sub.BMICategory,
	}
	if err := s.repo.AppendResponse(ctx, r); err != nil {
		return domain.Response{}, fmt.Errorf("store response: %w", err)
	}
	return r, nil
}

// ListResponses returns every stored survey response.
func (s *SurveyService) ListResponses(ctx context.Context) ([]domain.Response, error) {
	return s.repo.ListResponses(ctx)
}
