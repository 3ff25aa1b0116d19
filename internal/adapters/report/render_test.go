package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaltrack/insights/internal/adapters/report"
	"github.com/vitaltrack/insights/internal/core/domain"
	"github.com/vitaltrack/insights/internal/core/engine"
)

func sampleReport() engine.Report {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	bmi := 22.9
	return engine.Report{
		GeneratedAt: now,
		Score: domain.HealthScoreBreakdown{
			Total:         85,
			BloodPressure: 30, Weight: 25, Activity: 15, Goals: 10, PreventiveCare: 5,
			Details: domain.ScoreDetails{
				BloodPressure:  domain.ScoreDetail{Score: 30, Reason: "Blood pressure is in the normal range"},
				Weight:         domain.ScoreDetail{Score: 25, Reason: "BMI 22.9 is in the healthy range"},
				Activity:       domain.ScoreDetail{Score: 15, Reason: "1 record(s) in the last 7 days"},
				Goals:          domain.ScoreDetail{Score: 10, Reason: "1 active goal(s)"},
				PreventiveCare: domain.ScoreDetail{Score: 5, Reason: "No recent or upcoming doctor visits"},
			},
		},
		BMI:         &bmi,
		BMICategory: domain.BMINormal,
		WeightRange: &domain.WeightRange{NormalMin: 129.0, NormalMax: 173.6},
		WeightTrend: &domain.TrendResult{Diff: -2.0, Percentage: "-1.1", IsPositive: false},
		Streak:      domain.Streak{Days: 3, Message: "3 day streak"},
		Insights: []domain.Insight{
			{Title: "Weight Trending Down", Description: "You are down 2.0 lbs since your previous entry.", Type: domain.InsightPositive},
		},
		Medications: []domain.Medication{{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"}},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Health Score: 85/100")
	assert.Contains(t, out, "Blood pressure")
	assert.Contains(t, out, "30/30")
	assert.Contains(t, out, "BMI: 22.9 (Normal)")
	assert.Contains(t, out, "129.0")
	assert.Contains(t, out, "Weight trend: down -2.0 (-1.1%)")
	assert.Contains(t, out, "3 day streak")
	assert.Contains(t, out, "[POSITIVE] Weight Trending Down")
	assert.Contains(t, out, "Lisinopril 10mg, daily")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, sampleReport()))

	var decoded engine.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 85, decoded.Score.Total)
	assert.Equal(t, "3 day streak", decoded.Streak.Message)
	require.Len(t, decoded.Insights, 1)
}

func TestWrite_FormatDispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleReport(), report.FormatJSON))
	assert.True(t, json.Valid(buf.Bytes()))

	buf.Reset()
	require.NoError(t, report.Write(&buf, sampleReport(), report.FormatText))
	assert.Contains(t, buf.String(), "Health Report")

	err := report.Write(&buf, sampleReport(), report.Format("yaml"))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, report.IsValidFormat(report.FormatText))
	assert.True(t, report.IsValidFormat(report.FormatJSON))
	assert.False(t, report.IsValidFormat("yaml"))
}
