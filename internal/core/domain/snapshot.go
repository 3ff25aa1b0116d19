package domain

import "time"

// Snapshot is the data contract with the record-fetching API: one export of
// every record collection the engine consumes. Arrays usually arrive sorted
// newest-first but the engine never relies on that
type Snapshot struct {
	ExportedAt    time.Time              `json:"exported_at"`
	BloodPressure []BloodPressureReading `json:"blood_pressure"`
	Weights       []WeightRecord         `json:"weights"`
	Visits        []DoctorVisit          `json:"visits"`
	Goals         []HealthGoal           `json:"goals"`
	Labs          []LabPanel             `json:"labs"`
	Medications   []Medication           `json:"medications"`
}
