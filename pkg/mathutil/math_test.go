package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Round down",
			input:    199.584,
			expected: 199.58,
		},
		{
			name:     "Round up",
			input:    199.586,
			expected: 199.59,
		},
		{
			name:     "Already two decimals",
			input:    2395.40,
			expected: 2395.40,
		},
		{
			name:     "Negative value",
			input:    -12.345,
			expected: -12.35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundWhole(t *testing.T) {
	if got := RoundWhole(2395.4); got != 2395 {
		t.Errorf("RoundWhole(2395.4) = %v, expected 2395", got)
	}
	if got := RoundWhole(199.58); got != 200 {
		t.Errorf("RoundWhole(199.58) = %v, expected 200", got)
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(199.58, 199.59, 0.011) {
		t.Errorf("WithinTolerance() expected true for values within tolerance")
	}
	if WithinTolerance(199.58, 200.00, 0.011) {
		t.Errorf("WithinTolerance() expected false for values outside tolerance")
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{
			name:     "Ordinary value",
			input:    1.30,
			expected: true,
		},
		{
			name:     "NaN",
			input:    math.NaN(),
			expected: false,
		},
		{
			name:     "Positive infinity",
			input:    math.Inf(1),
			expected: false,
		},
		{
			name:     "Negative infinity",
			input:    math.Inf(-1),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFinite(tt.input); got != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
