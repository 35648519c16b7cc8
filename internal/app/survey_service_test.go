package app_test

import (
	"context"
	"errors"
	"testing"

	"healthsurvey/internal/app"
	"healthsurvey/internal/domain"
)

type mockDirectory struct {
	listFn func(ctx context.Context) ([]domain.Employee, error)
}

func (m *mockDirectory) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []domain.Employee{
		{EmployeeNumber: "00071215", EmployeeName: "Pyae Phyo Latt"},
		{EmployeeNumber: "00070782", EmployeeName: "Ni Ni Aung"},
	}, nil
}

type mockResponseRepo struct {
	appendFn func(ctx context.Context, r domain.Response) error
	listFn   func(ctx context.Context) ([]domain.Response, error)

	appended []domain.Response
}

func (m *mockResponseRepo) AppendResponse(ctx context.Context, r domain.Response) error {
	m.appended = append(m.appended, r)
	if m.appendFn != nil {
		return m.appendFn(ctx, r)
	}
	return nil
}

func (m *mockResponseRepo) ListResponses(ctx context.Context) ([]domain.Response, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return m.appended, nil
}

func validSubmission() domain.Submission {
	return domain.Submission{
		EmployeeNumber:     "00071215",
		EmployeeName:       "Pyae Phyo Latt",
		Gender:             "Male",
		Age:                35,
		WaistCircumference: 34,
		HeightFeet:         5,
		HeightInches:       6,
		Weight:             150,
		BMI:                24.2,
		BMICategory:        "Normal",
	}
}

func TestSubmitSurvey_Success(t *testing.T) {
	repo := &mockResponseRepo{}
	svc := app.NewSurveyService(&mockDirectory{}, repo)

	got, err := svc.SubmitSurvey(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SubmissionDate == "" {
		t.Fatal("expected a submission date")
	}
	if got.EmployeeNumber != "00071215" || got.BMI != 24.2 || got.BMICategory != "Normal" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(repo.appended) != 1 {
		t.Fatalf("expected one stored response, got %d", len(repo.appended))
	}
}

func TestSubmitSurvey_PadsShortEmployeeNumber(t *testing.T) {
	repo := &mockResponseRepo{}
	svc := app.NewSurveyService(&mockDirectory{}, repo)

	sub := validSubmission()
	sub.EmployeeNumber = "71215"
	got, err := svc.SubmitSurvey(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EmployeeNumber != "00071215" {
		t.Fatalf("expected padded number, got %q", got.EmployeeNumber)
	}
}

func TestSubmitSurvey_UnknownEmployee(t *testing.T) {
	repo := &mockResponseRepo{}
	svc := app.NewSurveyService(&mockDirectory{}, repo)

	sub := validSubmission()
	sub.EmployeeNumber = "99999999"
	_, err := svc.SubmitSurvey(context.Background(), sub)
	if !errors.Is(err, app.ErrUnknownEmployee) {
		t.Fatalf("expected ErrUnknownEmployee, got %v", err)
	}
	if len(repo.appended) != 0 {
		t.Fatal("nothing should be stored for an unknown employee")
	}
}

func TestSubmitSurvey_RoundsBMI(t *testing.T) {
	repo := &mockResponseRepo{}
	svc := app.NewSurveyService(&mockDirectory{}, repo)

	sub := validSubmission()
	sub.BMI = 24.207
	got, err := svc.SubmitSurvey(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BMI != 24.2 {
		t.Fatalf("expected rounded BMI 24.2, got %v", got.BMI)
	}
}

func TestSubmitSurvey_DirectoryError(t *testing.T) {
	dir := &mockDirectory{
		listFn: func(context.Context) ([]domain.Employee, error) {
			return nil, errors.New("csv missing")
		},
	}
	svc := app.NewSurveyService(dir, &mockResponseRepo{})
	if _, err := svc.SubmitSurvey(context.Background(), validSubmission()); err == nil {
		t.Fatal("expected error from directory")
	}
}

func TestSubmitSurvey_StoreError(t *testing.T) {
	repo := &mockResponseRepo{
		appendFn: func(context.Context, domain.Response) error {
			return errors.New("disk full")
		},
	}
	svc := app.NewSurveyService(&mockDirectory{}, repo)
	if _, err := svc.SubmitSurvey(context.Background(), validSubmission()); err == nil {
		t.Fatal("expected error from store")
	}
}
