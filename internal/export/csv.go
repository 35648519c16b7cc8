// Package export renders stored survey responses as downloadable files.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"healthsurvey/internal/domain"
)

// Filename returns the attachment name for a download started at t,
// e.g. "survey_responses_20260828_153000.csv".
func Filename(ext string, t time.Time) string {
	return fmt.Sprintf("survey_responses_%s.%s", t.Format("20060102_150405"), ext)
}

// WriteResponsesCSV writes rows in the canonical column order. Every
// field is quoted (encoding/csv only quotes when forced to) so
// spreadsheet tools keep the zero-padded employee numbers intact.
func WriteResponsesCSV(w io.Writer, rows []domain.Response) error {
	if err := writeQuotedRecord(w, domain.ResponseColumns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeQuotedRecord(w, responseRecord(r)); err != nil {
			return err
		}
	}
	return nil
}

func writeQuotedRecord(w io.Writer, record []string) error {
	quoted := make([]string, len(record))
	for i, field := range record {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\r\n")
	return err
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
