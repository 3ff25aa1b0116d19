package domain

// TrendResult represents the change between a current and a previous value
// Percentage is pre-formatted to one decimal place for direct display
type TrendResult struct {
	Diff       float64 `json:"diff"`
	Percentage string  `json:"percentage"`
	IsPositive bool    `json:"is_positive"`
}

// InsightType represents the tone of a generated insight
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightReminder InsightType = "reminder"
)

// Insight represents a human-readable observation derived from the records
type Insight struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        InsightType `json:"type"`
}

// ScoreDetail carries one component's score and the reason behind it
type ScoreDetail struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// ScoreDetails holds per-component details of a health score
type ScoreDetails struct {
	BloodPressure  ScoreDetail `json:"blood_pressure"`
	Weight         ScoreDetail `json:"weight"`
	Activity       ScoreDetail `json:"activity"`
	Goals          ScoreDetail `json:"goals"`
	PreventiveCare ScoreDetail `json:"preventive_care"`
}

// HealthScoreBreakdown is the weighted 0-100 composite health score
// Component maxima: blood pressure 30, weight 25, activity 20, goals 15,
// preventive care 10
type HealthScoreBreakdown struct {
	Total          int          `json:"total"`
	BloodPressure  int          `json:"blood_pressure"`
	Weight         int          `json:"weight"`
	Activity       int          `json:"activity"`
	Goals          int          `json:"goals"`
	PreventiveCare int          `json:"preventive_care"`
	Details        ScoreDetails `json:"details"`
}

// Streak represents a consecutive-day tracking streak
type Streak struct {
	Days    int    `json:"days"`
	Message string `json:"message"`
}

// BMICategory represents the standard BMI band
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// WeightRange expresses the BMI category boundaries as weights for a fixed
// height, in the caller's own weight unit
type WeightRange struct {
	UnderweightMax float64 `json:"underweight_max"`
	NormalMin      float64 `json:"normal_min"`
	NormalMax      float64 `json:"normal_max"`
	OverweightMin  float64 `json:"overweight_min"`
	OverweightMax  float64 `json:"overweight_max"`
	ObeseMin       float64 `json:"obese_min"`
}
