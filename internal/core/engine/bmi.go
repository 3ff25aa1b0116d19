package engine

import (
	"math"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// BMI category boundaries. The .4/.9 values are the display-facing upper
// bounds of each band; the .5/.0 values are the exact classification cutoffs
const (
	bmiUnderweightDisplayMax = 18.4
	bmiNormalMin             = 18.5
	bmiNormalDisplayMax      = 24.9
	bmiOverweightMin         = 25.0
	bmiOverweightDisplayMax  = 29.9
	bmiObeseMin              = 30.0
)

// ComputeBMI derives BMI from a weight and an optional height
// Returns nil when height is absent, zero, negative, or not finite, so NaN
// and Inf never propagate downstream
func ComputeBMI(weight float64, height *float64, weightUnit domain.WeightUnit, heightUnit domain.HeightUnit) *float64 {
	if height == nil {
		return nil
	}
	h := *height
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil
	}
	meters := ToMeters(h, heightUnit)
	bmi := ToKilograms(weight, weightUnit) / (meters * meters)
	return &bmi
}

// ClassifyBMI maps a BMI value to its standard band
func ClassifyBMI(bmi float64) domain.BMICategory {
	switch {
	case bmi < bmiNormalMin:
		return domain.BMIUnderweight
	case bmi < bmiOverweightMin:
		return domain.BMINormal
	case bmi < bmiObeseMin:
		return domain.BMIOverweight
	default:
		return domain.BMIObese
	}
}

// WeightRangeForHeight inverts the BMI formula at each category boundary to
// express the band edges as weights in the caller's own weight unit, so the
// UI can say "your normal range is X-Y lbs" instead of a unitless BMI.
// Returns false when height is not a positive finite number
func WeightRangeForHeight(height float64, heightUnit domain.HeightUnit, weightUnit domain.WeightUnit) (domain.WeightRange, bool) {
	if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return domain.WeightRange{}, false
	}
	meters := ToMeters(height, heightUnit)
	weightAt := func(bmi float64) float64 {
		return FromKilograms(bmi*meters*meters, weightUnit)
	}
	return domain.WeightRange{
		UnderweightMax: weightAt(bmiUnderweightDisplayMax),
		NormalMin:      weightAt(bmiNormalMin),
		NormalMax:      weightAt(bmiNormalDisplayMax),
		OverweightMin:  weightAt(bmiOverweightMin),
		OverweightMax:  weightAt(bmiOverweightDisplayMax),
		ObeseMin:       weightAt(bmiObeseMin),
	}, true
}
