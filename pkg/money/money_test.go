package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinor(t *testing.T) {
	tests := []struct {
		name     string
		major    float64
		expected int64
	}{
		{name: "Whole amount", major: 500, expected: 50000},
		{name: "Fractional amount", major: 499.99, expected: 49999},
		{name: "Half rounds away from zero", major: 0.005, expected: 1},
		{name: "Negative half rounds away from zero", major: -0.005, expected: -1},
		{name: "Negative amount", major: -40, expected: -4000},
		{name: "Zero", major: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMinor(tt.major))
		})
	}
}

func TestToMajor(t *testing.T) {
	assert.Equal(t, 500.0, ToMajor(50000))
	assert.Equal(t, -40.0, ToMajor(-4000))
	assert.Equal(t, 0.01, ToMajor(1))
}

func TestRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 123456789, -12345} {
		assert.Equal(t, minor, ToMinor(ToMajor(minor)))
	}
}
