package engine

import (
	"time"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// LatestReading returns the most recent blood pressure reading, or nil
func LatestReading(readings []domain.BloodPressureReading) *domain.BloodPressureReading {
	sorted := domain.SortReadingsDesc(readings)
	if len(sorted) == 0 {
		return nil
	}
	return &sorted[0]
}

// LatestWeight returns the most recent weight record, or nil
func LatestWeight(records []domain.WeightRecord) *domain.WeightRecord {
	sorted := domain.SortWeightsDesc(records)
	if len(sorted) == 0 {
		return nil
	}
	return &sorted[0]
}

// Report bundles every derived value for one snapshot
type Report struct {
	GeneratedAt    time.Time                   `json:"generated_at"`
	Score          domain.HealthScoreBreakdown `json:"score"`
	BMI            *float64                    `json:"bmi,omitempty"`
	BMICategory    domain.BMICategory          `json:"bmi_category,omitempty"`
	WeightRange    *domain.WeightRange         `json:"weight_range,omitempty"`
	WeightTrend    *domain.TrendResult         `json:"weight_trend,omitempty"`
	SystolicTrend  *domain.TrendResult         `json:"systolic_trend,omitempty"`
	DiastolicTrend *domain.TrendResult         `json:"diastolic_trend,omitempty"`
	Streak         domain.Streak               `json:"streak"`
	Insights       []domain.Insight            `json:"insights"`
	Medications    []domain.Medication         `json:"medications,omitempty"`
}

// Evaluate runs every calculator over one snapshot
// Pure except for reading its arguments; callers pick the reference time
func Evaluate(snap *domain.Snapshot, now time.Time) Report {
	report := Report{
		GeneratedAt: now,
		Score: ComputeHealthScore(
			LatestReading(snap.BloodPressure),
			snap.BloodPressure,
			LatestWeight(snap.Weights),
			snap.Weights,
			snap.Goals,
			snap.Visits,
			now,
		),
		WeightTrend:    WeightTrend(snap.Weights),
		SystolicTrend:  SystolicTrend(snap.BloodPressure),
		DiastolicTrend: DiastolicTrend(snap.BloodPressure),
		Streak: ComputeStreak(
			ActivityDates(snap.BloodPressure, snap.Weights, snap.Visits, now),
			now,
		),
		Insights: GenerateInsights(snap.BloodPressure, snap.Weights, snap.Labs, snap.Visits, now),
	}

	if latest := LatestWeight(snap.Weights); latest != nil {
		if bmi := ComputeBMI(latest.Weight, latest.Height, latest.Unit, latest.HeightUnit); bmi != nil {
			report.BMI = bmi
			report.BMICategory = ClassifyBMI(*bmi)
			if r, ok := WeightRangeForHeight(*latest.Height, latest.HeightUnit, latest.Unit); ok {
				report.WeightRange = &r
			}
		}
	}

	for _, m := range snap.Medications {
		if m.ActiveAt(now) {
			report.Medications = append(report.Medications, m)
		}
	}
	return report
}
