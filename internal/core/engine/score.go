package engine

import (
	"fmt"
	"time"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// Component score budget. The five maxima sum to 100
const (
	MaxBloodPressureScore  = 30
	MaxWeightScore         = 25
	MaxActivityScore       = 20
	MaxGoalsScore          = 15
	MaxPreventiveCareScore = 10
)

const (
	activityWindow       = 7 * 24 * time.Hour
	preventiveCareWindow = 30 * 24 * time.Hour
)

// ComputeHealthScore combines blood pressure, weight/BMI, tracking activity,
// goals, and preventive care into a weighted 0-100 score. Every branch
// resolves to a finite value: missing or malformed data falls through to the
// documented floor scores, so an empty snapshot scores 30 rather than failing
func ComputeHealthScore(
	bp *domain.BloodPressureReading,
	bpHistory []domain.BloodPressureReading,
	weight *domain.WeightRecord,
	weightHistory []domain.WeightRecord,
	goals []domain.HealthGoal,
	visits []domain.DoctorVisit,
	now time.Time,
) domain.HealthScoreBreakdown {
	bpDetail := scoreBloodPressure(bp)
	weightDetail := scoreWeight(weight)
	activityDetail := scoreActivity(bpHistory, weightHistory, now)
	goalsDetail := scoreGoals(goals)
	preventiveDetail := scorePreventiveCare(visits, now)

	return domain.HealthScoreBreakdown{
		Total:          bpDetail.Score + weightDetail.Score + activityDetail.Score + goalsDetail.Score + preventiveDetail.Score,
		BloodPressure:  bpDetail.Score,
		Weight:         weightDetail.Score,
		Activity:       activityDetail.Score,
		Goals:          goalsDetail.Score,
		PreventiveCare: preventiveDetail.Score,
		Details: domain.ScoreDetails{
			BloodPressure:  bpDetail,
			Weight:         weightDetail,
			Activity:       activityDetail,
			Goals:          goalsDetail,
			PreventiveCare: preventiveDetail,
		},
	}
}

func scoreBloodPressure(bp *domain.BloodPressureReading) domain.ScoreDetail {
	if bp == nil {
		return domain.ScoreDetail{Score: 5, Reason: "No blood pressure readings yet"}
	}
	switch bp.Category {
	case domain.BPCategoryNormal:
		return domain.ScoreDetail{Score: 30, Reason: "Blood pressure is in the normal range"}
	case domain.BPCategoryElevated:
		return domain.ScoreDetail{Score: 20, Reason: "Blood pressure is elevated"}
	case domain.BPCategoryHigh:
		return domain.ScoreDetail{Score: 10, Reason: "Blood pressure is high"}
	case domain.BPCategoryCrisis:
		return domain.ScoreDetail{Score: 0, Reason: "Blood pressure is at crisis level"}
	default:
		return domain.ScoreDetail{Score: 15, Reason: "Latest reading has no category"}
	}
}

func scoreWeight(weight *domain.WeightRecord) domain.ScoreDetail {
	if weight == nil {
		return domain.ScoreDetail{Score: 5, Reason: "No weight records yet"}
	}
	bmi := ComputeBMI(weight.Weight, weight.Height, weight.Unit, weight.HeightUnit)
	if bmi == nil {
		return domain.ScoreDetail{Score: 10, Reason: "Weight recorded without height, BMI unavailable"}
	}
	switch {
	case *bmi >= 18.5 && *bmi < 25:
		return domain.ScoreDetail{Score: 25, Reason: fmt.Sprintf("BMI %.1f is in the healthy range", *bmi)}
	case (*bmi >= 17 && *bmi < 18.5) || (*bmi >= 25 && *bmi < 30):
		return domain.ScoreDetail{Score: 15, Reason: fmt.Sprintf("BMI %.1f is slightly outside the healthy range", *bmi)}
	case (*bmi >= 16 && *bmi < 17) || *bmi >= 30:
		return domain.ScoreDetail{Score: 5, Reason: fmt.Sprintf("BMI %.1f is well outside the healthy range", *bmi)}
	default:
		return domain.ScoreDetail{Score: 0, Reason: fmt.Sprintf("BMI %.1f is severely underweight", *bmi)}
	}
}

func scoreActivity(bpHistory []domain.BloodPressureReading, weightHistory []domain.WeightRecord, now time.Time) domain.ScoreDetail {
	cutoff := now.Add(-activityWindow)
	recent := 0
	for _, r := range bpHistory {
		if !r.Date.Before(cutoff) && !r.Date.After(now) {
			recent++
		}
	}
	for _, r := range weightHistory {
		if !r.Date.Before(cutoff) && !r.Date.After(now) {
			recent++
		}
	}
	switch {
	case recent >= 3:
		return domain.ScoreDetail{Score: 20, Reason: fmt.Sprintf("%d records in the last 7 days", recent)}
	case recent >= 1:
		return domain.ScoreDetail{Score: 15, Reason: fmt.Sprintf("%d record(s) in the last 7 days", recent)}
	case len(bpHistory) > 0 || len(weightHistory) > 0:
		return domain.ScoreDetail{Score: 10, Reason: "No records in the last 7 days"}
	default:
		return domain.ScoreDetail{Score: 5, Reason: "No tracking history"}
	}
}

// scoreGoals is a flat baseline: per-goal progress is tracked elsewhere in
// the product but deliberately not weighted into the score yet. The reason
// string still reports the active count so the UI has something to show
func scoreGoals(goals []domain.HealthGoal) domain.ScoreDetail {
	active := 0
	for _, g := range goals {
		if g.Status == domain.GoalStatusActive {
			active++
		}
	}
	if active == 0 {
		return domain.ScoreDetail{Score: 10, Reason: "No active goals"}
	}
	return domain.ScoreDetail{Score: 10, Reason: fmt.Sprintf("%d active goal(s)", active)}
}

func scorePreventiveCare(visits []domain.DoctorVisit, now time.Time) domain.ScoreDetail {
	cutoff := now.Add(-preventiveCareWindow)
	for _, v := range visits {
		if v.IsUpcoming(now) {
			return domain.ScoreDetail{Score: 10, Reason: "Upcoming doctor visit scheduled"}
		}
		if v.Status == domain.VisitStatusCompleted && !v.VisitDate.Before(cutoff) && !v.VisitDate.After(now) {
			return domain.ScoreDetail{Score: 10, Reason: "Doctor visit completed in the last 30 days"}
		}
	}
	return domain.ScoreDetail{Score: 5, Reason: "No recent or upcoming doctor visits"}
}
