package domain

import "context"

// Submission is the survey payload posted by the form client.
type Submission struct {
	EmployeeNumber     string  `json:"employeeNumber"`
	EmployeeName       string  `json:"employeeName"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	WaistCircumference float64 `json:"waistCircumference"`
	HeightFeet         int     `json:"heightFeet"`
	HeightInches       int     `json:"heightInches"`
	Weight             float64 `json:"weight"`
	BMI                float64 `json:"bmi"`
	BMICategory        string  `json:"bmiCategory"`
}

// Response is a stored survey row. JSON keys match the survey CSV column
// names so listed responses read the same as the downloaded file.
type Response struct {
	SubmissionDate     string  `json:"SubmissionDate"`
	EmployeeNumber     string  `json:"EmployeeNumber"`
	EmployeeName       string  `json:"EmployeeName"`
	Gender             string  `json:"Gender"`
	Age                int     `json:"Age"`
	WaistCircumference float64 `json:"Waist Circumference (inches)"`
	HeightFeet         int     `json:"Height - Feet"`
	HeightInches       int     `json:"Height - Inches"`
	Weight             float64 `json:"Weight (lb)"`
	BMI                float64 `json:"BMI"`
	BMICategory        string  `json:"BMI Category"`
}

// SubmissionDateFormat is the local timestamp layout stamped on stored
// responses.
const SubmissionDateFormat = "2006-01-02 15:04:05"

// ResponseColumns is the canonical column order for stored responses and
// every export format.
var ResponseColumns = []string{
	"SubmissionDate",
	"EmployeeNumber",
	"EmployeeName",
	"Gender",
	"Age",
	"Waist Circumference (inches)",
	"Height - Feet",
	"Height - Inches",
	"Weight (lb)",
	"BMI",
	"BMI Category",
}

// ResponseRepository is the port for survey response persistence.
type ResponseRepository interface {
	AppendResponse(ctx context.Context, r Response) error
	ListResponses(ctx context.Context) ([]Response, error)
}
