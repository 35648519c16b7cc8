package memory

import (
	"context"
	"testing"

	"healthsurvey/internal/domain"
)

func TestListEmployees(t *testing.T) {
	db := New(
		domain.Employee{EmployeeNumber: "00071215", EmployeeName: "Pyae Phyo Latt"},
		domain.Employee{EmployeeNumber: "00070782", EmployeeName: "Ni Ni Aung"},
	)
	got, err := db.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(got))
	}
}

func TestAppendAndListResponses(t *testing.T) {
	db := New()
	ctx := context.Background()

	r := domain.Response{
		SubmissionDate: "2026-08-28 10:00:00",
		EmployeeNumber: "00071215",
		BMI:            24.2,
		BMICategory:    "Normal",
	}
	if err := db.AppendResponse(ctx, r); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := db.ListResponses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0] != r {
		t.Fatalf("unexpected responses: %+v", got)
	}

	// The returned slice is a copy; mutating it must not affect the store.
	got[0].BMICategory = "Obesity"
	again, _ := db.ListResponses(ctx)
	if again[0].BMICategory != "Normal" {
		t.Fatal("store was mutated through a returned slice")
	}
}
