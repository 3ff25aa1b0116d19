package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaltrack/insights/internal/adapters/snapshot"
	"github.com/vitaltrack/insights/internal/core/domain"
)

const exportDoc = `{
  "exported_at": "2025-06-15T08:00:00Z",
  "blood_pressure": [
    {"id": "6f1c2d24-9f5e-4a18-b6c6-0d9c33fa7d11", "systolic": 122, "diastolic": 79, "pulse": 68, "date": "2025-06-14T07:30:00Z", "category": "elevated"},
    {"id": "8a4f2b02-1c3d-4e5f-9a7b-2c4d6e8f0a1b", "systolic": 118, "diastolic": 76, "date": "2025-06-13T07:45:00Z", "category": "normal", "notes": "after morning walk"}
  ],
  "weights": [
    {"id": "0b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e", "weight": 176.4, "height": 70, "unit": "lbs", "height_unit": "in", "date": "2025-06-14T07:00:00Z"}
  ],
  "visits": [
    {"id": "1c2d3e4f-5a6b-7c8d-9e0f-1a2b3c4d5e6f", "doctor_name": "Dr. Okafor", "specialty": "Cardiology", "visit_date": "2025-06-20T14:00:00Z", "status": "scheduled"}
  ],
  "goals": [
    {"id": "2d3e4f5a-6b7c-8d9e-0f1a-2b3c4d5e6f7a", "title": "Reach 170 lbs", "target_value": 170, "current_value": 176.4, "start_date": "2025-05-01T00:00:00Z", "target_date": "2025-09-01T00:00:00Z", "status": "active"}
  ],
  "labs": [
    {"id": "3e4f5a6b-7c8d-9e0f-1a2b-3c4d5e6f7a8b", "test_date": "2025-06-01T00:00:00Z", "results": [
      {"name": "LDL", "value": "131", "unit": "mg/dL", "status": "high"},
      {"name": "HDL", "value": "52", "unit": "mg/dL", "status": "normal"}
    ]}
  ],
  "medications": [
    {"id": "4f5a6b7c-8d9e-0f1a-2b3c-4d5e6f7a8b9c", "name": "Lisinopril", "dosage": "10mg", "frequency": "daily", "start_date": "2025-03-01T00:00:00Z"}
  ]
}`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceLoad(t *testing.T) {
	source := snapshot.NewFileSource(writeExport(t, exportDoc), zerolog.Nop())

	snap, err := source.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.BloodPressure, 2)
	assert.Equal(t, 122, snap.BloodPressure[0].Systolic)
	assert.Equal(t, domain.BPCategoryElevated, snap.BloodPressure[0].Category)
	require.NotNil(t, snap.BloodPressure[0].Pulse)
	assert.Equal(t, 68, *snap.BloodPressure[0].Pulse)
	assert.Nil(t, snap.BloodPressure[1].Pulse)

	require.Len(t, snap.Weights, 1)
	assert.Equal(t, domain.WeightUnitPounds, snap.Weights[0].Unit)
	require.NotNil(t, snap.Weights[0].Height)
	assert.Equal(t, 70.0, *snap.Weights[0].Height)

	require.Len(t, snap.Visits, 1)
	assert.Equal(t, domain.VisitStatusScheduled, snap.Visits[0].Status)

	require.Len(t, snap.Labs, 1)
	assert.Equal(t, 1, snap.Labs[0].AbnormalCount())

	require.Len(t, snap.Goals, 1)
	require.Len(t, snap.Medications, 1)
}

func TestFileSourceLoad_MissingFile(t *testing.T) {
	source := snapshot.NewFileSource(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	_, err := source.Load(context.Background())
	assert.ErrorContains(t, err, "read snapshot file")
}

func TestFileSourceLoad_MalformedJSON(t *testing.T) {
	source := snapshot.NewFileSource(writeExport(t, "{not json"), zerolog.Nop())
	_, err := source.Load(context.Background())
	assert.ErrorContains(t, err, "decode snapshot")
}

func TestFileSourceLoad_CancelledContext(t *testing.T) {
	source := snapshot.NewFileSource(writeExport(t, exportDoc), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
