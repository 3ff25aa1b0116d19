package engine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaltrack/insights/internal/core/domain"
	"github.com/vitaltrack/insights/internal/core/engine"
)

func TestTrend(t *testing.T) {
	up := engine.Trend(100, fptr(80))
	require.NotNil(t, up)
	assert.Equal(t, 20.0, up.Diff)
	assert.Equal(t, "25.0", up.Percentage)
	assert.True(t, up.IsPositive)

	down := engine.Trend(80, fptr(100))
	require.NotNil(t, down)
	assert.Equal(t, -20.0, down.Diff)
	assert.Equal(t, "-20.0", down.Percentage)
	assert.False(t, down.IsPositive)
}

func TestTrend_NoChange(t *testing.T) {
	flat := engine.Trend(100, fptr(100))
	require.NotNil(t, flat)
	assert.Equal(t, 0.0, flat.Diff)
	assert.Equal(t, "0.0", flat.Percentage)
	assert.False(t, flat.IsPositive)
}

func TestTrend_NullGuards(t *testing.T) {
	assert.Nil(t, engine.Trend(100, nil))
	// previous == 0 is treated as "no previous data" — a confirmed product
	// decision, not a bug
	assert.Nil(t, engine.Trend(100, fptr(0)))
	assert.Nil(t, engine.Trend(math.NaN(), fptr(80)))
	assert.Nil(t, engine.Trend(100, fptr(math.Inf(1))))
}

func TestSplitHalf(t *testing.T) {
	// First half {10, 20} avg 15; second half {30, 40} avg 35
	trend := engine.SplitHalf([]float64{10, 20, 30, 40})
	require.NotNil(t, trend)
	assert.Equal(t, 20.0, trend.Diff)
	assert.True(t, trend.IsPositive)
}

func TestSplitHalf_OddLength(t *testing.T) {
	// Odd length: extra element goes to the second half
	// First half {10, 20} avg 15; second half {30, 40, 50} avg 40
	trend := engine.SplitHalf([]float64{10, 20, 30, 40, 50})
	require.NotNil(t, trend)
	assert.Equal(t, 25.0, trend.Diff)
}

func TestSplitHalf_TooShort(t *testing.T) {
	assert.Nil(t, engine.SplitHalf(nil))
	assert.Nil(t, engine.SplitHalf([]float64{42}))
}

func TestWeightTrend_SortsDefensively(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// Oldest-first on purpose: the engine must not trust the caller's order
	records := []domain.WeightRecord{
		{Weight: 180, Unit: domain.WeightUnitPounds, Date: now.AddDate(0, 0, -14)},
		{Weight: 178, Unit: domain.WeightUnitPounds, Date: now.AddDate(0, 0, -7)},
		{Weight: 176, Unit: domain.WeightUnitPounds, Date: now},
	}

	trend := engine.WeightTrend(records)
	require.NotNil(t, trend)
	assert.Equal(t, -2.0, trend.Diff)
	assert.False(t, trend.IsPositive)
}

func TestWeightTrend_NeedsTwoRecords(t *testing.T) {
	assert.Nil(t, engine.WeightTrend(nil))
	assert.Nil(t, engine.WeightTrend([]domain.WeightRecord{{Weight: 180, Date: time.Now()}}))
}

func TestBloodPressureTrends(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	readings := []domain.BloodPressureReading{
		{Systolic: 120, Diastolic: 80, Date: now},
		{Systolic: 130, Diastolic: 85, Date: now.AddDate(0, 0, -1)},
	}

	sys := engine.SystolicTrend(readings)
	require.NotNil(t, sys)
	assert.Equal(t, -10.0, sys.Diff)

	dia := engine.DiastolicTrend(readings)
	require.NotNil(t, dia)
	assert.Equal(t, -5.0, dia.Diff)
}

func TestBMITrend_SkipsRecordsWithoutHeight(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.WeightRecord{
		{Weight: 72, Height: fptr(175), Unit: domain.WeightUnitKilograms, HeightUnit: domain.HeightUnitCentimeters, Date: now},
		{Weight: 80, Unit: domain.WeightUnitKilograms, Date: now.AddDate(0, 0, -3)}, // no height, skipped
		{Weight: 74, Height: fptr(175), Unit: domain.WeightUnitKilograms, HeightUnit: domain.HeightUnitCentimeters, Date: now.AddDate(0, 0, -7)},
	}

	trend := engine.BMITrend(records)
	require.NotNil(t, trend)
	assert.Less(t, trend.Diff, 0.0)
}
