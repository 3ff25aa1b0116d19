// Package report renders engine output for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vitaltrack/insights/internal/core/domain"
	"github.com/vitaltrack/insights/internal/core/engine"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// IsValidFormat checks if a format is supported
func IsValidFormat(f Format) bool {
	return f == FormatText || f == FormatJSON
}

// Write renders a full report in the given format
func Write(w io.Writer, r engine.Report, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatText:
		return WriteText(w, r)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteJSON renders the report as indented JSON
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteText renders the report as an aligned plain-text summary
func WriteText(w io.Writer, r engine.Report) error {
	fmt.Fprintf(w, "Health Report — %s\n\n", r.GeneratedAt.Format("Mon, 02 Jan 2006"))

	fmt.Fprintf(w, "Health Score: %d/100\n", r.Score.Total)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeComponent(tw, "Blood pressure", r.Score.Details.BloodPressure, engine.MaxBloodPressureScore)
	writeComponent(tw, "Weight", r.Score.Details.Weight, engine.MaxWeightScore)
	writeComponent(tw, "Activity", r.Score.Details.Activity, engine.MaxActivityScore)
	writeComponent(tw, "Goals", r.Score.Details.Goals, engine.MaxGoalsScore)
	writeComponent(tw, "Preventive care", r.Score.Details.PreventiveCare, engine.MaxPreventiveCareScore)
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.BMI != nil {
		fmt.Fprintf(w, "\nBMI: %.1f (%s)\n", *r.BMI, r.BMICategory)
		if r.WeightRange != nil {
			fmt.Fprintf(w, "Normal weight range for your height: %.1f–%.1f\n",
				r.WeightRange.NormalMin, r.WeightRange.NormalMax)
		}
	}

	writeTrend(w, "Weight", r.WeightTrend)
	writeTrend(w, "Systolic", r.SystolicTrend)
	writeTrend(w, "Diastolic", r.DiastolicTrend)

	fmt.Fprintf(w, "\nStreak: %s\n", r.Streak.Message)

	if len(r.Insights) > 0 {
		fmt.Fprintf(w, "\nInsights:\n")
		for _, ins := range r.Insights {
			fmt.Fprintf(w, "  [%s] %s — %s\n", strings.ToUpper(string(ins.Type)), ins.Title, ins.Description)
		}
	}

	if len(r.Medications) > 0 {
		fmt.Fprintf(w, "\nActive medications:\n")
		for _, m := range r.Medications {
			fmt.Fprintf(w, "  %s %s, %s\n", m.Name, m.Dosage, m.Frequency)
		}
	}
	return nil
}

func writeComponent(w io.Writer, label string, d domain.ScoreDetail, max int) {
	fmt.Fprintf(w, "  %s\t%d/%d\t%s\n", label, d.Score, max, d.Reason)
}

func writeTrend(w io.Writer, label string, t *domain.TrendResult) {
	if t == nil {
		return
	}
	direction := "down"
	if t.IsPositive {
		direction = "up"
	}
	fmt.Fprintf(w, "%s trend: %s %.1f (%s%%)\n", label, direction, t.Diff, t.Percentage)
}
