package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// bpImprovementThreshold is the average systolic drop, in mmHg, between the
// older and newer half of the history that counts as an improvement
const bpImprovementThreshold = 5.0

// GenerateInsights produces human-readable observations from the records.
// The rules are independent and every matching rule fires; nothing here is a
// priority cascade. When no rule fires at all, a single fallback reminder is
// returned instead of an empty list
func GenerateInsights(
	readings []domain.BloodPressureReading,
	weights []domain.WeightRecord,
	labs []domain.LabPanel,
	visits []domain.DoctorVisit,
	now time.Time,
) []domain.Insight {
	var insights []domain.Insight

	insights = append(insights, bloodPressureInsights(readings)...)
	insights = append(insights, weightInsights(weights)...)
	if visit := nextVisitInsight(visits, now); visit != nil {
		insights = append(insights, *visit)
	}
	if lab := latestLabInsight(labs); lab != nil {
		insights = append(insights, *lab)
	}

	if len(insights) == 0 {
		insights = append(insights, domain.Insight{
			Title:       "Start Tracking",
			Description: "Log your first reading to see personalized insights here.",
			Type:        domain.InsightReminder,
		})
	}
	return insights
}

func bloodPressureInsights(readings []domain.BloodPressureReading) []domain.Insight {
	var insights []domain.Insight
	sorted := domain.SortReadingsDesc(readings)

	if len(sorted) > 0 {
		latest := sorted[0]
		if latest.Category == domain.BPCategoryCrisis || latest.Category == domain.BPCategoryHigh {
			insights = append(insights, domain.Insight{
				Title: "Blood Pressure Alert",
				Description: fmt.Sprintf("Your latest reading of %d/%d is %s. Consider consulting your doctor.",
					latest.Systolic, latest.Diastolic, latest.Category),
				Type: domain.InsightWarning,
			})
		}
	}

	// Oldest-first systolic series for the split-half comparison
	systolic := make([]float64, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		systolic = append(systolic, float64(sorted[i].Systolic))
	}
	if trend := SplitHalf(systolic); trend != nil && trend.Diff < -bpImprovementThreshold {
		insights = append(insights, domain.Insight{
			Title: "Blood Pressure Improving",
			Description: fmt.Sprintf("Your average systolic pressure dropped by %.0f points. Keep it up!",
				-trend.Diff),
			Type: domain.InsightPositive,
		})
	}
	return insights
}

func weightInsights(weights []domain.WeightRecord) []domain.Insight {
	trend := WeightTrend(weights)
	if trend == nil || trend.Diff == 0 {
		return nil
	}
	sorted := domain.SortWeightsDesc(weights)
	unit := sorted[0].Unit
	if trend.Diff < 0 {
		return []domain.Insight{{
			Title:       "Weight Trending Down",
			Description: fmt.Sprintf("You are down %.1f %s since your previous entry.", -trend.Diff, unit),
			Type:        domain.InsightPositive,
		}}
	}
	return []domain.Insight{{
		Title:       "Weight Trending Up",
		Description: fmt.Sprintf("You are up %.1f %s since your previous entry.", trend.Diff, unit),
		Type:        domain.InsightWarning,
	}}
}

func nextVisitInsight(visits []domain.DoctorVisit, now time.Time) *domain.Insight {
	var next *domain.DoctorVisit
	for i := range visits {
		v := visits[i]
		if !v.IsUpcoming(now) {
			continue
		}
		if next == nil || v.VisitDate.Before(next.VisitDate) {
			next = &v
		}
	}
	if next == nil {
		return nil
	}
	days := int(math.Ceil(next.VisitDate.Sub(now).Hours() / 24))
	plural := "days"
	if days == 1 {
		plural = "day"
	}
	return &domain.Insight{
		Title: "Upcoming Appointment",
		Description: fmt.Sprintf("%s (%s) in %d %s.",
			next.DoctorName, next.Specialty, days, plural),
		Type: domain.InsightReminder,
	}
}

func latestLabInsight(labs []domain.LabPanel) *domain.Insight {
	sorted := domain.SortLabsDesc(labs)
	if len(sorted) == 0 {
		return nil
	}
	latest := sorted[0]
	if abnormal := latest.AbnormalCount(); abnormal > 0 {
		plural := "results"
		if abnormal == 1 {
			plural = "result"
		}
		return &domain.Insight{
			Title:       "Lab Results Need Attention",
			Description: fmt.Sprintf("Your latest panel has %d %s outside the normal range.", abnormal, plural),
			Type:        domain.InsightWarning,
		}
	}
	return &domain.Insight{
		Title:       "Lab Results Normal",
		Description: "All results in your latest panel are within the normal range.",
		Type:        domain.InsightPositive,
	}
}
