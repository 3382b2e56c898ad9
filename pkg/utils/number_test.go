package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "half rounds away from zero", input: 0.125, expected: 0.13},
		{name: "below half rounds down", input: 12.341, expected: 12.34},
		{name: "above half rounds up", input: 12.349, expected: 12.35},
		{name: "negative half rounds away from zero", input: -0.125, expected: -0.13},
		{name: "negative below half rounds toward zero", input: -12.341, expected: -12.34},
		{name: "negative above half rounds away", input: -12.349, expected: -12.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 7.3, RoundWithOneDecimalPlace(7.25))
	assert.Equal(t, -7.3, RoundWithOneDecimalPlace(-7.25))
}

func TestRoundWithThreeDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.063, RoundWithThreeDecimalPlace(0.0625))
	assert.Equal(t, -0.063, RoundWithThreeDecimalPlace(-0.0625))
}
