// Package csvstore persists the employee directory and survey responses
// as CSV files, the survey program's original storage format.
package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"healthsurvey/internal/domain"
)

// Directory reads the employee directory from a CSV file with
// EmployeeNumber,EmployeeName columns.
type Directory struct {
	path string
}

// NewDirectory creates a Directory over the given CSV path.
func NewDirectory(path string) *Directory {
	return &Directory{path: path}
}

var _ domain.EmployeeDirectory = (*Directory)(nil)

// ListEmployees reads every directory row. Employee numbers are kept as
// strings and zero-padded to eight digits so values that lost their
// leading zeros in a spreadsheet round-trip come back canonical.
func (d *Directory) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("employee data file not found: %w", err)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.path, err)
	}

	var out []domain.Employee
	for i, rec := range records {
		if i == 0 || len(rec) < 2 {
			continue // header or malformed row
		}
		out = append(out, domain.Employee{
			EmployeeNumber: domain.NormalizeEmployeeNumber(rec[0]),
			EmployeeName:   rec[1],
		})
	}
	return out, nil
}

// sampleEmployees seeds a fresh install with a small directory.
var sampleEmployees = [][]string{
	{"00071215", "Pyae Phyo Latt"},
	{"00070782", "Ni Ni Aung"},
	{"00071156", "Ayar Lwin"},
	{"00070098", "Aye Aye Tun"},
	{"00071182", "Myo Min Min Wai"},
	{"00070039", "Kyaw Zayar Myint"},
	{"00070961", "Min Soe Moe Naung"},
	{"00070671", "Tin Maung Htwe"},
	{"00070459", "San San Aung"},
	{"00070081", "Nilar"},
}

// EnsureSeed writes the sample directory when the file does not exist
// yet. An existing file is never touched.
func (d *Directory) EnsureSeed() error {
	if _, err := os.Stat(d.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(d.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"EmployeeNumber", "EmployeeName"}); err != nil {
		return err
	}
	for _, rec := range sampleEmployees {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
