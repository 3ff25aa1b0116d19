package domain

import (
	"slices"
	"time"
)

// Callers conventionally hand the engine arrays already sorted newest-first,
// but "latest"/"previous" selection must not depend on that convention.
// These helpers return sorted copies and never mutate their input.

func sortedDesc[T any](items []T, date func(T) time.Time) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return date(b).Compare(date(a))
	})
	return out
}

// SortReadingsDesc returns a newest-first copy of the readings
func SortReadingsDesc(readings []BloodPressureReading) []BloodPressureReading {
	return sortedDesc(readings, func(r BloodPressureReading) time.Time { return r.Date })
}

// SortWeightsDesc returns a newest-first copy of the weight records
func SortWeightsDesc(records []WeightRecord) []WeightRecord {
	return sortedDesc(records, func(r WeightRecord) time.Time { return r.Date })
}

// SortVisitsDesc returns a newest-first copy of the visits
func SortVisitsDesc(visits []DoctorVisit) []DoctorVisit {
	return sortedDesc(visits, func(v DoctorVisit) time.Time { return v.VisitDate })
}

// SortLabsDesc returns a newest-first copy of the lab panels
func SortLabsDesc(panels []LabPanel) []LabPanel {
	return sortedDesc(panels, func(p LabPanel) time.Time { return p.TestDate })
}
