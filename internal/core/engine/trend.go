package engine

import (
	"fmt"
	"math"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// Trend compares a current value against a previous one
// Returns nil when previous is nil or zero — a previous value of exactly 0 is
// therefore indistinguishable from "no previous data"; that suppression is a
// confirmed product decision, not an accident. Non-finite inputs also yield
// nil so NaN never reaches the formatted percentage
func Trend(current float64, previous *float64) *domain.TrendResult {
	if previous == nil || *previous == 0 {
		return nil
	}
	if math.IsNaN(current) || math.IsInf(current, 0) || math.IsNaN(*previous) || math.IsInf(*previous, 0) {
		return nil
	}
	diff := current - *previous
	pct := diff / *previous * 100
	return &domain.TrendResult{
		Diff:       diff,
		Percentage: fmt.Sprintf("%.1f", pct),
		IsPositive: diff > 0,
	}
}

// SplitHalf compares the average of the first half of a chronologically
// sorted series against the average of the second half. Odd-length series
// put the extra element in the second half. Needs at least two values
func SplitHalf(values []float64) *domain.TrendResult {
	if len(values) < 2 {
		return nil
	}
	mid := len(values) / 2
	firstAvg := mean(values[:mid])
	secondAvg := mean(values[mid:])
	return Trend(secondAvg, &firstAvg)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// WeightTrend compares the two most recent weight records
func WeightTrend(records []domain.WeightRecord) *domain.TrendResult {
	sorted := domain.SortWeightsDesc(records)
	if len(sorted) < 2 {
		return nil
	}
	return Trend(sorted[0].Weight, &sorted[1].Weight)
}

// SystolicTrend compares the two most recent systolic values
func SystolicTrend(readings []domain.BloodPressureReading) *domain.TrendResult {
	return bpTrend(readings, func(r domain.BloodPressureReading) float64 { return float64(r.Systolic) })
}

// DiastolicTrend compares the two most recent diastolic values
func DiastolicTrend(readings []domain.BloodPressureReading) *domain.TrendResult {
	return bpTrend(readings, func(r domain.BloodPressureReading) float64 { return float64(r.Diastolic) })
}

func bpTrend(readings []domain.BloodPressureReading, value func(domain.BloodPressureReading) float64) *domain.TrendResult {
	sorted := domain.SortReadingsDesc(readings)
	if len(sorted) < 2 {
		return nil
	}
	previous := value(sorted[1])
	return Trend(value(sorted[0]), &previous)
}

// BMITrend compares the BMI of the two most recent weight records that have
// a usable height
func BMITrend(records []domain.WeightRecord) *domain.TrendResult {
	sorted := domain.SortWeightsDesc(records)
	var bmis []float64
	for _, r := range sorted {
		if bmi := ComputeBMI(r.Weight, r.Height, r.Unit, r.HeightUnit); bmi != nil {
			bmis = append(bmis, *bmi)
		}
		if len(bmis) == 2 {
			break
		}
	}
	if len(bmis) < 2 {
		return nil
	}
	return Trend(bmis[0], &bmis[1])
}
