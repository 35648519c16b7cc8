package app_test

import (
	"context"
	"errors"
	"testing"

	"healthsurvey/internal/app"
	"healthsurvey/internal/domain"
)

func TestListEmployees_NormalizesNumbers(t *testing.T) {
	dir := &mockDirectory{
		listFn: func(context.Context) ([]domain.Employee, error) {
			return []domain.Employee{
				{EmployeeNumber: "71215", EmployeeName: "Pyae Phyo Latt"},
				{EmployeeNumber: "00070782", EmployeeName: "Ni Ni Aung"},
			}, nil
		},
	}
	got, err := app.NewDirectoryService(dir).ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].EmployeeNumber != "00071215" {
		t.Errorf("expected padded number, got %q", got[0].EmployeeNumber)
	}
	if got[1].EmployeeNumber != "00070782" {
		t.Errorf("expected unchanged number, got %q", got[1].EmployeeNumber)
	}
}

func TestListEmployees_Error(t *testing.T) {
	dir := &mockDirectory{
		listFn: func(context.Context) ([]domain.Employee, error) {
			return nil, errors.New("file not found")
		},
	}
	if _, err := app.NewDirectoryService(dir).ListEmployees(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
