package domain

import (
	"context"
	"strings"
)

// Employee is a directory record. JSON keys match the directory wire
// format used by the employee CSV export.
type Employee struct {
	EmployeeNumber string `json:"EmployeeNumber"`
	EmployeeName   string `json:"EmployeeName"`
}

// EmployeeDirectory is the port for the read-only employee directory.
type EmployeeDirectory interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
}

// employeeNumberWidth is the canonical padded width of an employee number.
const employeeNumberWidth = 8

// NormalizeEmployeeNumber left-pads an employee number with zeros to
// eight digits so values round-tripped through spreadsheet tools keep
// their canonical form. Longer values are returned unchanged.
func NormalizeEmployeeNumber(n string) string {
	n = strings.TrimSpace(n)
	if n == "" || len(n) >= employeeNumberWidth {
		return n
	}
	return strings.Repeat("0", employeeNumberWidth-len(n)) + n
}
