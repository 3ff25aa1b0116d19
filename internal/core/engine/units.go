// Package engine derives classifications, trends, scores, streaks, and
// insights from immutable arrays of health records. Every function is a pure
// computation over its arguments: no I/O, no shared state, no clock reads —
// time-dependent calculators take an explicit reference time.
package engine

import "github.com/vitaltrack/insights/internal/core/domain"

// Conversion constants
const (
	metersPerInch     = 0.0254
	kilogramsPerPound = 0.453592
)

// ToMeters converts a height to meters
// Total over all inputs; zero and negative values pass through arithmetically,
// the BMI calculator owns the division guards
func ToMeters(height float64, unit domain.HeightUnit) float64 {
	if unit == domain.HeightUnitInches {
		return height * metersPerInch
	}
	return height / 100
}

// ToKilograms converts a weight to kilograms
func ToKilograms(weight float64, unit domain.WeightUnit) float64 {
	if unit == domain.WeightUnitPounds {
		return weight * kilogramsPerPound
	}
	return weight
}

// FromKilograms converts a weight in kilograms back to the given unit
func FromKilograms(weightKg float64, unit domain.WeightUnit) float64 {
	if unit == domain.WeightUnitPounds {
		return weightKg / kilogramsPerPound
	}
	return weightKg
}
