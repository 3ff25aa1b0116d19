package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// BPCategory represents the clinical severity bucket of a blood pressure reading
type BPCategory string

const (
	BPCategoryNormal   BPCategory = "normal"   // Within normal range
	BPCategoryElevated BPCategory = "elevated" // Slightly above normal, watch
	BPCategoryHigh     BPCategory = "high"     // Hypertension, follow up with a doctor
	BPCategoryCrisis   BPCategory = "crisis"   // Hypertensive crisis, seek care immediately
)

// ValidBPCategories returns all valid blood pressure categories
func ValidBPCategories() []BPCategory {
	return []BPCategory{
		BPCategoryNormal,
		BPCategoryElevated,
		BPCategoryHigh,
		BPCategoryCrisis,
	}
}

// IsValidBPCategory checks if a category is one of the known buckets
func IsValidBPCategory(category BPCategory) bool {
	for _, c := range ValidBPCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// BloodPressureReading represents a single blood pressure measurement
// Category is assigned at write-time by the API layer; readings arriving with
// an empty or unrecognized category are tolerated and may be reclassified
type BloodPressureReading struct {
	ID        uuid.UUID  `json:"id"`
	Systolic  int        `json:"systolic"`
	Diastolic int        `json:"diastolic"`
	Pulse     *int       `json:"pulse,omitempty"`
	Date      time.Time  `json:"date"`
	Category  BPCategory `json:"category"`
	Notes     string     `json:"notes,omitempty"`
}

// WeightUnit represents the unit a weight was recorded in
type WeightUnit string

const (
	WeightUnitPounds    WeightUnit = "lbs"
	WeightUnitKilograms WeightUnit = "kg"
)

// IsValidWeightUnit checks if a weight unit is valid
func IsValidWeightUnit(unit WeightUnit) bool {
	return unit == WeightUnitPounds || unit == WeightUnitKilograms
}

// HeightUnit represents the unit a height was recorded in
type HeightUnit string

const (
	HeightUnitInches      HeightUnit = "in"
	HeightUnitCentimeters HeightUnit = "cm"
)

// IsValidHeightUnit checks if a height unit is valid
func IsValidHeightUnit(unit HeightUnit) bool {
	return unit == HeightUnitInches || unit == HeightUnitCentimeters
}

// WeightRecord represents a single weight measurement
// Height is optional; BMI is undefined without it
type WeightRecord struct {
	ID         uuid.UUID  `json:"id"`
	Weight     float64    `json:"weight"`
	Height     *float64   `json:"height,omitempty"`
	Unit       WeightUnit `json:"unit"`
	HeightUnit HeightUnit `json:"height_unit"`
	Date       time.Time  `json:"date"`
	Notes      string     `json:"notes,omitempty"`
}

// VisitStatus represents the lifecycle state of a doctor visit
type VisitStatus string

const (
	VisitStatusScheduled   VisitStatus = "scheduled"
	VisitStatusCompleted   VisitStatus = "completed"
	VisitStatusCancelled   VisitStatus = "cancelled"
	VisitStatusRescheduled VisitStatus = "rescheduled"
)

// ValidVisitStatuses returns all valid visit statuses
func ValidVisitStatuses() []VisitStatus {
	return []VisitStatus{
		VisitStatusScheduled,
		VisitStatusCompleted,
		VisitStatusCancelled,
		VisitStatusRescheduled,
	}
}

// IsValidVisitStatus checks if a visit status is valid
func IsValidVisitStatus(status VisitStatus) bool {
	for _, s := range ValidVisitStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// DoctorVisit represents a scheduled or past doctor appointment
type DoctorVisit struct {
	ID         uuid.UUID   `json:"id"`
	DoctorName string      `json:"doctor_name"`
	Specialty  string      `json:"specialty"`
	VisitDate  time.Time   `json:"visit_date"`
	Status     VisitStatus `json:"status"`
}

// IsUpcoming reports whether the visit is still on the calendar at now
// Cancelled and completed visits never count as upcoming
func (v DoctorVisit) IsUpcoming(now time.Time) bool {
	if v.Status != VisitStatusScheduled && v.Status != VisitStatusRescheduled {
		return false
	}
	return !v.VisitDate.Before(now)
}

// GoalStatus represents the lifecycle state of a health goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusOverdue   GoalStatus = "overdue"
)

// IsValidGoalStatus checks if a goal status is valid
func IsValidGoalStatus(status GoalStatus) bool {
	return status == GoalStatusActive || status == GoalStatusCompleted || status == GoalStatusOverdue
}

// HealthGoal represents a user-defined numeric health goal
type HealthGoal struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	StartDate    time.Time  `json:"start_date"`
	TargetDate   time.Time  `json:"target_date"`
	Status       GoalStatus `json:"status"`
}

// Progress returns goal completion as a percentage clamped to [0,100]
// A zero or non-finite target yields 0, never NaN or Inf
func (g HealthGoal) Progress() float64 {
	if g.TargetValue == 0 || math.IsNaN(g.TargetValue) || math.IsInf(g.TargetValue, 0) {
		return 0
	}
	p := g.CurrentValue / g.TargetValue * 100
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// LabResultStatus represents where a lab result fell relative to its reference range
type LabResultStatus string

const (
	LabResultNormal   LabResultStatus = "normal"
	LabResultHigh     LabResultStatus = "high"
	LabResultLow      LabResultStatus = "low"
	LabResultAbnormal LabResultStatus = "abnormal"
)

// IsValidLabResultStatus checks if a lab result status is valid
func IsValidLabResultStatus(status LabResultStatus) bool {
	switch status {
	case LabResultNormal, LabResultHigh, LabResultLow, LabResultAbnormal:
		return true
	}
	return false
}

// LabResult represents a single test within a blood work panel
type LabResult struct {
	Name   string          `json:"name"`
	Value  string          `json:"value"`
	Unit   string          `json:"unit,omitempty"`
	Status LabResultStatus `json:"status"`
}

// LabPanel represents one blood work panel with its individual results
type LabPanel struct {
	ID       uuid.UUID   `json:"id"`
	TestDate time.Time   `json:"test_date"`
	Results  []LabResult `json:"results"`
}

// AbnormalCount returns the number of results outside their reference range
func (p LabPanel) AbnormalCount() int {
	count := 0
	for _, r := range p.Results {
		if r.Status != LabResultNormal {
			count++
		}
	}
	return count
}

// Medication represents a logged medication
// Medications feed the report surface only; they carry no score weight
type Medication struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ActiveAt reports whether the medication is being taken at the given time
func (m Medication) ActiveAt(t time.Time) bool {
	if t.Before(m.StartDate) {
		return false
	}
	return m.EndDate == nil || !t.After(*m.EndDate)
}
