package engine

import "github.com/vitaltrack/insights/internal/core/domain"

// Blood pressure thresholds in mmHg, following ACC/AHA ambulatory guidance
// collapsed to the dashboard's four buckets. Stage 1 and stage 2 hypertension
// both map to "high". There is no diastolic elevated band: the elevated
// bucket is defined by systolic 120-129 with diastolic still under 80
const (
	SystolicElevatedMin = 120
	SystolicHighMin     = 130
	SystolicCrisisMin   = 180

	DiastolicHighMin   = 80
	DiastolicCrisisMin = 120
)

// Severity orders categories from least to most severe
// Unknown categories rank below normal so reclassification always wins
func Severity(category domain.BPCategory) int {
	switch category {
	case domain.BPCategoryNormal:
		return 1
	case domain.BPCategoryElevated:
		return 2
	case domain.BPCategoryHigh:
		return 3
	case domain.BPCategoryCrisis:
		return 4
	default:
		return 0
	}
}

// Classify maps a reading to its clinical category
// Systolic and diastolic are evaluated independently and the more severe of
// the two governs
func Classify(systolic, diastolic int) domain.BPCategory {
	systolicCat := classifySystolic(systolic)
	diastolicCat := classifyDiastolic(diastolic)
	if Severity(diastolicCat) > Severity(systolicCat) {
		return diastolicCat
	}
	return systolicCat
}

func classifySystolic(systolic int) domain.BPCategory {
	switch {
	case systolic >= SystolicCrisisMin:
		return domain.BPCategoryCrisis
	case systolic >= SystolicHighMin:
		return domain.BPCategoryHigh
	case systolic >= SystolicElevatedMin:
		return domain.BPCategoryElevated
	default:
		return domain.BPCategoryNormal
	}
}

func classifyDiastolic(diastolic int) domain.BPCategory {
	switch {
	case diastolic >= DiastolicCrisisMin:
		return domain.BPCategoryCrisis
	case diastolic >= DiastolicHighMin:
		return domain.BPCategoryHigh
	default:
		return domain.BPCategoryNormal
	}
}

// Reclassify re-derives the category of every reading from its systolic and
// diastolic values, on a copy. Used to repair readings whose write-time
// category drifted from the current rule
func Reclassify(readings []domain.BloodPressureReading) []domain.BloodPressureReading {
	out := make([]domain.BloodPressureReading, len(readings))
	for i, r := range readings {
		r.Category = Classify(r.Systolic, r.Diastolic)
		out[i] = r
	}
	return out
}
