package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStrategy_IsValid tests all valid and invalid strategies
func TestStrategy_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		expected bool
	}{
		{
			name:     "direct is valid",
			strategy: StrategyDirect,
			expected: true,
		},
		{
			name:     "boolean is valid",
			strategy: StrategyBoolean,
			expected: true,
		},
		{
			name:     "empty string is invalid",
			strategy: Strategy(""),
			expected: false,
		},
		{
			name:     "unknown strategy is invalid",
			strategy: Strategy("union"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.strategy.IsValid())
		})
	}
}

func TestAllStrategies(t *testing.T) {
	strategies := AllStrategies()

	assert.Equal(t, []Strategy{StrategyDirect, StrategyBoolean}, strategies)
	for _, s := range strategies {
		assert.True(t, s.IsValid())
	}
}

func TestStrategy_Description(t *testing.T) {
	assert.Equal(t, "Direct (explicit openings)", StrategyDirect.Description())
	assert.Equal(t, "Boolean (solid subtraction)", StrategyBoolean.Description())
	assert.Equal(t, "Unknown", Strategy("x").Description())
	assert.Equal(t, "boolean", StrategyBoolean.String())
}

func TestDefaultCopySettings(t *testing.T) {
	s := DefaultCopySettings()

	assert.Equal(t, StrategyDirect, s.Strategy)
	assert.Equal(t, 10.0, s.Offset)
	assert.True(t, s.InheritStyle)
	assert.False(t, s.Structural)
	assert.False(t, s.KeepScaffolding)
	assert.NoError(t, s.Validate())
}

func TestCopySettings_ValidateRejectsUnknownStrategy(t *testing.T) {
	s := DefaultCopySettings()
	s.Strategy = "union"

	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
}

func TestCopySettings_ValidateRejectsNonFiniteOffset(t *testing.T) {
	for _, offset := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := DefaultCopySettings()
		s.Offset = offset
		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultCopySettings(), s.Copy)
	assert.Empty(t, s.Storage.DataDir)
}
