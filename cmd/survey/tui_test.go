package main

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"healthsurvey/internal/domain"
	"healthsurvey/internal/form"
)

type stubAPI struct {
	submitCalls int
	submitErr   error
}

func (s *stubAPI) Employees(ctx context.Context) ([]domain.Employee, error) {
	return []domain.Employee{
		{EmployeeNumber: "00071215", EmployeeName: "Pyae Phyo Latt"},
	}, nil
}

func (s *stubAPI) SubmitSurvey(ctx context.Context, sub domain.Submission) error {
	s.submitCalls++
	return s.submitErr
}

func loadedModel(t *testing.T) (*model, *stubAPI) {
	t.Helper()
	api := &stubAPI{}
	ctrl := form.New(api)
	if n := ctrl.LoadEmployees(context.Background()); n.Kind != form.NoticeNone {
		t.Fatalf("load notice: %+v", n)
	}
	return newModel(ctrl, api), api
}

func fillForm(m *model) {
	m.cycleEmployee(1)
	m.ctrl.SetField(form.FieldGender, "Male")
	m.ctrl.SetField(form.FieldAge, "35")
	m.ctrl.SetField(form.FieldWaistCircumference, "34")
	m.ctrl.SetField(form.FieldHeightFeet, "5")
	m.ctrl.SetField(form.FieldHeightInches, "6")
	m.ctrl.SetField(form.FieldWeight, "150")
}

func TestTypingReachesController(t *testing.T) {
	m, _ := loadedModel(t)
	m.setFocus(2) // age input

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42")})
	if got := m.ctrl.State().Age; got != "42" {
		t.Fatalf("controller age = %q", got)
	}
}

func TestViewShowsDerivedBMI(t *testing.T) {
	m, _ := loadedModel(t)
	view := m.View()
	if !strings.Contains(view, "—") {
		t.Error("expected absent BMI placeholder before input")
	}

	fillForm(m)
	view = m.View()
	if !strings.Contains(view, "24.2") || !strings.Contains(view, "Normal") {
		t.Errorf("derived BMI missing from view:\n%s", view)
	}
}

func TestSubmit_MissingFieldsShowsNoticeWithoutCall(t *testing.T) {
	m, api := loadedModel(t)
	if cmd := m.submit(); cmd != nil {
		t.Fatal("expected no command for an empty form")
	}
	if m.notice.Kind != form.NoticeValidation {
		t.Fatalf("notice = %+v", m.notice)
	}
	if api.submitCalls != 0 {
		t.Fatalf("submit calls = %d", api.submitCalls)
	}
}

func TestSubmit_InFlightGuard(t *testing.T) {
	m, api := loadedModel(t)
	fillForm(m)

	cmd := m.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if second := m.submit(); second != nil {
		t.Fatal("second submit while in flight should produce no command")
	}

	// Run the command and complete the state machine.
	msg := cmd()
	m.Update(msg)
	if api.submitCalls != 1 {
		t.Fatalf("submit calls = %d; want 1", api.submitCalls)
	}
	if m.notice.Kind != form.NoticeSubmitted {
		t.Fatalf("notice = %+v", m.notice)
	}
	if m.optIdx != 0 {
		t.Error("employee selection not cleared after success")
	}
}

func TestSubmit_FailureKeepsInputs(t *testing.T) {
	m, api := loadedModel(t)
	fillForm(m)
	m.inputs[1].SetValue("35")
	api.submitErr = errStub

	cmd := m.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	m.Update(cmd())

	if m.notice.Kind != form.NoticeSubmitFailed {
		t.Fatalf("notice = %+v", m.notice)
	}
	if m.inputs[1].Value() != "35" {
		t.Error("input cleared on failure")
	}
	if m.ctrl.State().Age != "35" {
		t.Error("controller state cleared on failure")
	}
}

var errStub = &stubError{}

type stubError struct{}

func (*stubError) Error() string { return "connection refused" }
