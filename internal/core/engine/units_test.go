package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitaltrack/insights/internal/core/domain"
	"github.com/vitaltrack/insights/internal/core/engine"
)

func TestToMeters(t *testing.T) {
	assert.InDelta(t, 1.778, engine.ToMeters(70, domain.HeightUnitInches), 0.001)
	assert.InDelta(t, 1.78, engine.ToMeters(178, domain.HeightUnitCentimeters), 0.001)
}

func TestToKilograms(t *testing.T) {
	assert.InDelta(t, 68.0388, engine.ToKilograms(150, domain.WeightUnitPounds), 0.001)
	assert.Equal(t, 70.0, engine.ToKilograms(70, domain.WeightUnitKilograms))
}

func TestFromKilogramsRoundTrip(t *testing.T) {
	kg := engine.ToKilograms(165.5, domain.WeightUnitPounds)
	assert.InDelta(t, 165.5, engine.FromKilograms(kg, domain.WeightUnitPounds), 1e-9)
	assert.Equal(t, 80.0, engine.FromKilograms(80, domain.WeightUnitKilograms))
}

func TestConversionsAreTotal(t *testing.T) {
	// Zero and negative inputs pass through without panicking; division
	// guards live in the BMI calculator
	assert.Equal(t, 0.0, engine.ToMeters(0, domain.HeightUnitCentimeters))
	assert.Equal(t, -0.0254, engine.ToMeters(-1, domain.HeightUnitInches))
	assert.Equal(t, 0.0, engine.ToKilograms(0, domain.WeightUnitPounds))
}
