package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"healthsurvey/internal/domain"
)

// ResponseStore appends survey responses to a CSV file with the
// canonical column order, creating the header row on first use.
type ResponseStore struct {
	mu   sync.Mutex
	path string
}

// NewResponseStore creates a ResponseStore over the given CSV path.
func NewResponseStore(path string) *ResponseStore {
	return &ResponseStore{path: path}
}

var _ domain.ResponseRepository = (*ResponseStore)(nil)

// AppendResponse appends one row, writing the header first when the file
// does not exist yet.
func (s *ResponseStore) AppendResponse(ctx context.Context, r domain.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		writeHeader = true
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(domain.ResponseColumns); err != nil {
			return err
		}
	}
	if err := w.Write(responseRecord(r)); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// ListResponses reads every stored row. A missing file means no
// responses yet, not an error.
func (s *ResponseStore) ListResponses(ctx context.Context) ([]domain.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	out := make([]domain.Response, 0, len(records))
	for i, rec := range records {
		if i == 0 || len(rec) < len(domain.ResponseColumns) {
			continue
		}
		out = append(out, domain.Response{
			SubmissionDate:     rec[0],
			EmployeeNumber:     domain.NormalizeEmployeeNumber(rec[1]),
			EmployeeName:       rec[2],
			Gender:             rec[3],
			Age:                atoi(rec[4]),
			WaistCircumference: atof(rec[5]),
			HeightFeet:         atoi(rec[6]),
			HeightInches:       atoi(rec[7]),
			Weight:             atof(rec[8]),
			BMI:                atof(rec[9]),
			BMICategory:        rec[10],
		})
	}
	return out, nil
}

func responseRecord(r domain.Response) []string {
	return []string{
		r.SubmissionDate,
		r.EmployeeNumber,
		r.EmployeeName,
		r.Gender,
		strconv.Itoa(r.Age),
		ftoa(r.WaistCircumference),
		strconv.Itoa(r.HeightFeet),
		strconv.Itoa(r.HeightInches),
		ftoa(r.Weight),
		ftoa(r.BMI),
		r.BMICategory,
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// atoi and atof coerce malformed cells to zero rather than failing the
// whole file, mirroring how the stored CSV was read historically.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
