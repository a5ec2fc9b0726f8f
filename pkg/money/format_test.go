package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "zero", value: 0, expected: "0.00"},
		{name: "small", value: 85, expected: "85.00"},
		{name: "exact tie rounds to even", value: 0.125, expected: "0.12"},
		{name: "exact tie rounds to even upward", value: 0.375, expected: "0.38"},
		{name: "stored below half", value: 1.005, expected: "1.00"},
		{name: "stored below half again", value: 2.675, expected: "2.67"},
		{name: "stored above half", value: 0.035, expected: "0.04"},
		{name: "rounds down", value: 1.004, expected: "1.00"},
		{name: "three digits", value: 999.999, expected: "1,000.00"},
		{name: "thousands", value: 1234.5, expected: "1,234.50"},
		{name: "millions", value: 1234567.891, expected: "1,234,567.89"},
		{name: "exact group boundary", value: 100000, expected: "100,000.00"},
		{name: "negative", value: -9876543.21, expected: "-9,876,543.21"},
		{name: "negative small", value: -12.3, expected: "-12.30"},
		{name: "negative tie", value: -0.125, expected: "-0.12"},
		{name: "negative rounds to zero", value: -0.001, expected: "-0.00"},
		{name: "smallest subnormal", value: math.SmallestNonzeroFloat64, expected: "0.00"},
		{name: "won amount", value: 117500, expected: "117,500.00"},
		{name: "NaN", value: math.NaN(), expected: "nan"},
		{name: "infinity", value: math.Inf(1), expected: "inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.value))
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 1, expected: "1.0000"},
		{value: 1.0 / 0.85, expected: "1.1765"},
		{value: 1175.0 / 0.85, expected: "1382.3529"},
		{value: 0.00001, expected: "0.0000"},
		{value: 0.00005, expected: "0.0001"},
		{value: 1.00005, expected: "1.0001"},
		{value: math.Inf(-1), expected: "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRate(tt.value))
		})
	}
}
