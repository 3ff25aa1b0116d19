package engine

import (
	"fmt"
	"time"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// maxStreakDays caps the backward walk
const maxStreakDays = 365

// ComputeStreak counts consecutive calendar days with at least one tracked
// activity, walking backward from today (not from the most recent activity).
// Boundary resolution: the walk governs. When the most recent activity was
// exactly yesterday and today has none, the walk finds today missing and the
// streak is 0 with "Start tracking today" — a streak only survives the day
// once something is logged on it
func ComputeStreak(activities []time.Time, now time.Time) domain.Streak {
	if len(activities) == 0 {
		return domain.Streak{Days: 0, Message: "No tracking data"}
	}

	days := make(map[string]bool, len(activities))
	var latest time.Time
	for _, a := range activities {
		days[dayKey(a)] = true
		if a.After(latest) {
			latest = a
		}
	}

	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	if startOfDay(latest).Before(yesterday) {
		return domain.Streak{Days: 0, Message: "Start tracking today"}
	}

	streak := 0
	for cursor := today; streak < maxStreakDays; cursor = cursor.AddDate(0, 0, -1) {
		if !days[dayKey(cursor)] {
			break
		}
		streak++
	}

	switch streak {
	case 0:
		return domain.Streak{Days: 0, Message: "Start tracking today"}
	case 1:
		return domain.Streak{Days: 1, Message: "1 day streak"}
	default:
		return domain.Streak{Days: streak, Message: fmt.Sprintf("%d day streak", streak)}
	}
}

// ActivityDates collects the activity timestamps the streak counts: every
// blood pressure and weight record, plus doctor visits that actually
// happened (completed, or any non-cancelled visit already in the past)
func ActivityDates(
	readings []domain.BloodPressureReading,
	weights []domain.WeightRecord,
	visits []domain.DoctorVisit,
	now time.Time,
) []time.Time {
	dates := make([]time.Time, 0, len(readings)+len(weights)+len(visits))
	for _, r := range readings {
		dates = append(dates, r.Date)
	}
	for _, w := range weights {
		dates = append(dates, w.Date)
	}
	for _, v := range visits {
		if v.Status == domain.VisitStatusCancelled {
			continue
		}
		if v.Status == domain.VisitStatusCompleted || v.VisitDate.Before(now) {
			dates = append(dates, v.VisitDate)
		}
	}
	return dates
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
