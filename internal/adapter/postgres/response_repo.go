package postgres

import (
	"context"
	"time"

	"healthsurvey/internal/domain"
)

var _ domain.ResponseRepository = (*DB)(nil)

// AppendResponse inserts a new survey response row.
func (d *DB) AppendResponse(ctx context.Context, r domain.Response) error {
	submittedAt, err := time.ParseInLocation(domain.SubmissionDateFormat, r.SubmissionDate, time.Local)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO survey_responses(
			submission_date, employee_number, employee_name, gender, age,
			waist_circumference, height_feet, height_inches, weight, bmi, bmi_category
		) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		submittedAt.UTC(), r.EmployeeNumber, r.EmployeeName, r.Gender, r.Age,
		r.WaistCircumference, r.HeightFeet, r.HeightInches, r.Weight, r.BMI, r.BMICategory,
	)
	return err
}

// ListResponses returns every stored response in submission order.
func (d *DB) ListResponses(ctx context.Context) ([]domain.Response, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT submission_date, employee_number, employee_name, gender, age,
			waist_circumference, height_feet, height_inches, weight, bmi, bmi_category
		FROM survey_responses ORDER BY submission_date, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Response
	for rows.Next() {
		var r domain.Response
		var submittedAt time.Time
		if err := rows.Scan(
			&submittedAt, &r.EmployeeNumber, &r.EmployeeName, &r.Gender, &r.Age,
			&r.WaistCircumference, &r.HeightFeet, &r.HeightInches, &r.Weight, &r.BMI, &r.BMICategory,
		); err != nil {
			return nil, err
		}
		r.SubmissionDate = submittedAt.In(time.Local).Format(domain.SubmissionDateFormat)
		out = append(out, r)
	}
	return out, rows.Err()
}
