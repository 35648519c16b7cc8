package form

import (
	"context"
	"fmt"
	"strings"

	"healthsurvey/internal/domain"
)

// API is the survey service surface the form depends on.
type API interface {
	Employees(ctx context.Context) ([]domain.Employee, error)
	SubmitSurvey(ctx context.Context, sub domain.Submission) error
}

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	// NoticeDirectoryLoad: the employee directory could not be fetched;
	// the form stays usable with no selectable employees.
	NoticeDirectoryLoad
	// NoticeValidation: one or more required fields are empty. Fields
	// holds the complete missing set.
	NoticeValidation
	// NoticeComputation: fields are present but the BMI could not be
	// derived from the numeric inputs.
	NoticeComputation
	// NoticeSubmitted: the survey was stored; the form has been reset.
	NoticeSubmitted
	// NoticeSubmitFailed: the submission call failed; input is retained
	// so the user can retry.
	NoticeSubmitFailed
)

// Notice is a typed message for the presentation layer to render however
// it likes.
type Notice struct {
	Kind    NoticeKind
	Message string
	Fields  []Field
}

// Option is a selectable employee entry.
type Option struct {
	Number string
	Label  string
}

// Controller owns the form state and the submission state machine. It is
// driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	api        API
	state      State
	employees  []domain.Employee
	submitting bool
}

// New creates a Controller with an empty form and no directory.
func New(api API) *Controller {
	return &Controller{api: api}
}

// State returns the current form state.
func (c *Controller) State() State {
	return c.state
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	return c.submitting
}

// LoadEmployees fetches the employee directory. A single attempt: on
// error the directory stays empty and a notice is returned; the form
// remains usable.
func (c *Controller) LoadEmployees(ctx context.Context) Notice {
	employees, err := c.api.Employees(ctx)
	if err != nil {
		return Notice{Kind: NoticeDirectoryLoad, Message: "Could not load the employee list."}
	}
	c.employees = employees
	return Notice{}
}

// Options returns the selectable employees as "{number} - {name}" labels.
func (c *Controller) Options() []Option {
	opts := make([]Option, 0, len(c.employees))
	for _, e := range c.employees {
		opts = append(opts, Option{
			Number: e.EmployeeNumber,
			Label:  fmt.Sprintf("%s - %s", e.EmployeeNumber, e.EmployeeName),
		})
	}
	return opts
}

// SelectEmployee copies number and name from the matching directory
// entry into the form. An empty or unknown number clears both.
func (c *Controller) SelectEmployee(number string) {
	for _, e := range c.employees {
		if e.EmployeeNumber == number {
			c.state = c.state.WithField(FieldEmployeeNumber, e.EmployeeNumber).
				WithField(FieldEmployeeName, e.EmployeeName)
			return
		}
	}
	c.state = c.state.WithField(FieldEmployeeNumber, "").
		WithField(FieldEmployeeName, "")
}

// SetField updates a single field, recomputing the derived BMI.
func (c *Controller) SetField(f Field, value string) {
	c.state = c.state.WithField(f, value)
}

// BeginSubmit validates the form and, when it passes, flips the in-flight
// flag and returns the payload to post. ok is false when nothing should
// be sent: a submission already in flight (empty notice), missing fields,
// or an uncomputable BMI.
func (c *Controller) BeginSubmit() (payload domain.Submission, notice Notice, ok bool) {
	if c.submitting {
		return domain.Submission{}, Notice{}, false
	}

	if missing := c.state.MissingFields(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return domain.Submission{}, Notice{
			Kind:    NoticeValidation,
			Message: "Please fill in the required fields: " + strings.Join(names, ", "),
			Fields:  missing,
		}, false
	}

	payload, err := c.buildPayload()
	if err != nil {
		return domain.Submission{}, Notice{
			Kind:    NoticeComputation,
			Message: "BMI could not be calculated. Check the numeric fields.",
		}, false
	}

	c.submitting = true
	return payload, Notice{}, true
}

// FinishSubmit completes the submission state machine. The in-flight
// flag is always cleared; on success the form resets to empty, on
// failure input is retained for retry.
func (c *Controller) FinishSubmit(err error) Notice {
	c.submitting = false
	if err != nil {
		return Notice{Kind: NoticeSubmitFailed, Message: "Failed to submit survey. Please try again."}
	}
	c.state = State{}
	return Notice{Kind: NoticeSubmitted, Message: "Survey submitted successfully."}
}

// Submit runs the full submit flow synchronously: validate, post once,
// finish. Event-loop callers that need the call off-thread should use
// BeginSubmit/FinishSubmit directly.
func (c *Controller) Submit(ctx context.Context) Notice {
	payload, notice, ok := c.BeginSubmit()
	if !ok {
		return notice
	}
	return c.FinishSubmit(c.api.SubmitSurvey(ctx, payload))
}

// buildPayload parses the free-text state into the wire payload,
// recomputing the BMI from the current measurement fields.
func (c *Controller) buildPayload() (domain.Submission, error) {
	bmi := deriveBMI(c.state)
	if bmi == nil {
		return domain.Submission{}, fmt.Errorf("bmi unavailable")
	}
	age, ok := parseIntField(c.state.Age)
	if !ok {
		return domain.Submission{}, fmt.Errorf("age %q is not a number", c.state.Age)
	}
	waist, _ := parseFloatField(c.state.WaistCircumference)
	feet, _ := parseIntField(c.state.HeightFeet)
	inches, _ := parseIntField(c.state.HeightInches)
	weight, _ := parseFloatField(c.state.Weight)

	return domain.Submission{
		EmployeeNumber:     c.state.EmployeeNumber,
		EmployeeName:       c.state.EmployeeName,
		Gender:             c.state.Gender,
		Age:                age,
		WaistCircumference: waist,
		HeightFeet:         feet,
		HeightInches:       inches,
		Weight:             weight,
		BMI:                bmi.Value,
		BMICategory:        string(bmi.Category),
	}, nil
}
