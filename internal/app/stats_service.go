package app

import (
	"context"
	"math"

	"healthsurvey/internal/domain"
)

// StatsService aggregates stored survey responses.
type StatsService struct {
	repo domain.ResponseRepository
}

// NewStatsService creates a StatsService backed by the given response
// store.
func NewStatsService(repo domain.ResponseRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Stats is the aggregate view over all survey responses.
type Stats struct {
	TotalResponses     int            `json:"total_responses"`
	GenderDistribution map[string]int `json:"gender_distribution"`
	Averages           Averages       `json:"averages"`
	BMICategories      map[string]int `json:"bmi_categories"`
	DateRange          DateRange      `json:"date_range"`
}

// Averages holds per-field means, rounded to one decimal. The mean
// height is decomposed back into whole feet plus remaining inches.
type Averages struct {
	Age                      float64 `json:"age"`
	BMI                      float64 `json:"bmi"`
	WaistCircumferenceInches float64 `json:"waist_circumference_inches"`
	WeightLb                 float64 `json:"weight_lb"`
	HeightFeet               int     `json:"height_feet"`
	HeightInches             float64 `json:"height_inches"`
}

// DateRange is the first and last submission timestamp, "N/A" when there
// are no responses.
type DateRange struct {
	FirstResponse string `json:"first_response"`
	LastResponse  string `json:"last_response"`
}

// GetStats computes aggregate statistics over every stored response.
func (s *StatsService) GetStats(ctx context.Context) (Stats, error) {
	rows, err := s.repo.ListResponses(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		GenderDistribution: map[string]int{},
		BMICategories:      map[string]int{},
		DateRange:          DateRange{FirstResponse: "N/A", LastResponse: "N/A"},
	}
	if len(rows) == 0 {
		return stats, nil
	}

	stats.TotalResponses = len(rows)
	var ageSum, bmiSum, waistSum, weightSum, inchesSum float64
	first, last := rows[0].SubmissionDate, rows[0].SubmissionDate
	for _, r := range rows {
		if r.Gender != "" {
			stats.GenderDistribution[r.Gender]++
		}
		if r.BMICategory != "" {
			stats.BMICategories[r.BMICategory]++
		}
		ageSum += float64(r.Age)
		bmiSum += r.BMI
		waistSum += r.WaistCircumference
		weightSum += r.Weight
		inchesSum += float64(domain.TotalInches(r.HeightFeet, r.HeightInches))

		// Timestamps sort lexically in their canonical layout.
		if r.SubmissionDate < first {
			first = r.SubmissionDate
		}
		if r.SubmissionDate > last {
			last = r.SubmissionDate
		}
	}

	n := float64(len(rows))
	stats.Averages = Averages{
		Age:                      round1(ageSum / n),
		BMI:                      round1(bmiSum / n),
		WaistCircumferenceInches: round1(waistSum / n),
		WeightLb:                 round1(weightSum / n),
	}
	meanInches := round1(inchesSum / n)
	if meanInches > 0 {
		stats.Averages.HeightFeet = int(meanInches / 12)
		stats.Averages.HeightInches = round1(math.Mod(meanInches, 12))
	}
	stats.DateRange = DateRange{FirstResponse: first, LastResponse: last}
	return stats, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
