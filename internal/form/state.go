// Package form implements the survey form controller: input state held as
// free text, reducer-style field updates with reactive BMI derivation,
// aggregate validation, and a guarded submission state machine.
package form

import (
	"strconv"
	"strings"

	"healthsurvey/internal/domain"
)

// Field identifies a form input. The string value doubles as the name
// shown in validation notices.
type Field string

const (
	FieldEmployeeNumber     Field = "employeeNumber"
	FieldEmployeeName       Field = "employeeName"
	FieldGender             Field = "gender"
	FieldAge                Field = "age"
	FieldWaistCircumference Field = "waistCircumference"
	FieldHeightFeet         Field = "heightFeet"
	FieldHeightInches       Field = "heightInches"
	FieldWeight             Field = "weight"
)

// requiredFields is the submission checklist, in notice order.
// employeeName is excluded: it is a denormalized copy set together with
// the number at selection time.
var requiredFields = []Field{
	FieldEmployeeNumber,
	FieldGender,
	FieldAge,
	FieldWaistCircumference,
	FieldHeightFeet,
	FieldHeightInches,
	FieldWeight,
}

// State is the survey form's input state. Every field stays free text
// until submission; the zero value is the empty form.
type State struct {
	EmployeeNumber     string
	EmployeeName       string
	Gender             string
	Age                string
	WaistCircumference string
	HeightFeet         string
	HeightInches       string
	Weight             string

	// BMI is derived from the four measurement fields. It is nil when
	// any of them is empty or unparsable, and is recomputed on every
	// field update so it can never go stale.
	BMI *domain.BMIResult
}

// WithField returns a copy of s with the given field set and the derived
// BMI recomputed.
func (s State) WithField(f Field, value string) State {
	switch f {
	case FieldEmployeeNumber:
		s.EmployeeNumber = value
	case FieldEmployeeName:
		s.EmployeeName = value
	case FieldGender:
		s.Gender = value
	case FieldAge:
		s.Age = value
	case FieldWaistCircumference:
		s.WaistCircumference = value
	case FieldHeightFeet:
		s.HeightFeet = value
	case FieldHeightInches:
		s.HeightInches = value
	case FieldWeight:
		s.Weight = value
	}
	s.BMI = deriveBMI(s)
	return s
}

// Get returns the current value of a field.
func (s State) Get(f Field) string {
	switch f {
	case FieldEmployeeNumber:
		return s.EmployeeNumber
	case FieldEmployeeName:
		return s.EmployeeName
	case FieldGender:
		return s.Gender
	case FieldAge:
		return s.Age
	case FieldWaistCircumference:
		return s.WaistCircumference
	case FieldHeightFeet:
		return s.HeightFeet
	case FieldHeightInches:
		return s.HeightInches
	case FieldWeight:
		return s.Weight
	}
	return ""
}

// MissingFields returns the required fields that are still empty, in
// checklist order.
func (s State) MissingFields() []Field {
	var missing []Field
	for _, f := range requiredFields {
		if strings.TrimSpace(s.Get(f)) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// deriveBMI recomputes the derived BMI from the measurement fields.
// Waist circumference gates the result but does not enter the formula;
// the survey has always collected it without using it in the
// calculation, and that behavior is preserved.
func deriveBMI(s State) *domain.BMIResult {
	if _, ok := parseFloatField(s.WaistCircumference); !ok {
		return nil
	}
	feet, ok := parseIntField(s.HeightFeet)
	if !ok {
		return nil
	}
	inches, ok := parseIntField(s.HeightInches)
	if !ok {
		return nil
	}
	weight, ok := parseFloatField(s.Weight)
	if !ok {
		return nil
	}
	return domain.ComputeBMI(feet, inches, weight)
}

func parseIntField(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloatField(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
