package domain

import "math"

// Category is a BMI classification band.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obesity     Category = "Obesity"
)

// BMIResult pairs a display-rounded BMI value with its category.
type BMIResult struct {
	Value    float64
	Category Category
}

// TotalInches converts a feet/inches height to total inches.
func TotalInches(feet, inches int) int {
	return feet*12 + inches
}

// ComputeBMI derives BMI from a height in feet/inches and a weight in
// pounds using the imperial formula 703*weight/inches². The category is
// taken from the exact value; Value is then rounded to one decimal, half
// away from zero. Returns nil when the height is not positive.
func ComputeBMI(feet, inches int, weight float64) *BMIResult {
	total := TotalInches(feet, inches)
	if total <= 0 {
		return nil
	}
	bmi := 703 * weight / float64(total*total)
	return &BMIResult{
		Value:    RoundBMI(bmi),
		Category: Categorize(bmi),
	}
}

// Categorize maps a BMI value onto its band. 18.5 and 24.9 close the
// Normal band, 29.9 closes Overweight.
func Categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi <= 24.9:
		return Normal
	case bmi <= 29.9:
		return Overweight
	default:
		return Obesity
	}
}

// RoundBMI rounds a BMI value to one decimal, half away from zero.
func RoundBMI(bmi float64) float64 {
	return math.Round(bmi*10) / 10
}
