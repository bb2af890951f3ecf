package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{
			name:     "both zero yields zero",
			current:  0,
			previous: 0,
			expected: 0,
		},
		{
			name:     "growth from zero saturates at 100",
			current:  5,
			previous: 0,
			expected: 100,
		},
		{
			name:     "equal values yield zero",
			current:  42,
			previous: 42,
			expected: 0,
		},
		{
			name:     "fifty percent increase",
			current:  150,
			previous: 100,
			expected: 50,
		},
		{
			name:     "fifty percent decrease",
			current:  50,
			previous: 100,
			expected: -50,
		},
		{
			name:     "drop to zero is minus 100",
			current:  0,
			previous: 80,
			expected: -100,
		},
		{
			name:     "fractional values",
			current:  2.5,
			previous: 2.0,
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateGrowth(tt.current, tt.previous), 1e-9)
		})
	}
}
