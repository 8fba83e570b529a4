package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name               string
		gross              int64
		percent            float64
		expectedCommission int64
		expectedNet        int64
	}{
		{name: "5 percent of 1000", gross: 1000, percent: 5, expectedCommission: 50, expectedNet: 950},
		{name: "Zero percent", gross: 1000, percent: 0, expectedCommission: 0, expectedNet: 1000},
		{name: "Full percent", gross: 1000, percent: 100, expectedCommission: 1000, expectedNet: 0},
		{name: "Rounds half up", gross: 333, percent: 5, expectedCommission: 17, expectedNet: 316},
		{name: "Zero gross", gross: 0, percent: 5, expectedCommission: 0, expectedNet: 0},
		{name: "Fractional percent", gross: 10000, percent: 2.5, expectedCommission: 250, expectedNet: 9750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Split(tt.gross, tt.percent)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCommission, res.CommissionAmount)
			assert.Equal(t, tt.expectedNet, res.NetAmount)
		})
	}
}

func TestSplitValidation(t *testing.T) {
	_, err := Split(-1, 5)
	assert.ErrorIs(t, err, ErrNegativeGross)

	_, err = Split(100, -0.1)
	assert.ErrorIs(t, err, ErrInvalidPercent)

	_, err = Split(100, 100.1)
	assert.ErrorIs(t, err, ErrInvalidPercent)
}

func TestSplitInvariant(t *testing.T) {
	// commission + net must reconstruct gross for every input.
	percents := []float64{0, 0.5, 1, 2.5, 5, 10, 33.3, 50, 99, 100}
	for gross := int64(0); gross <= 5000; gross++ {
		for _, percent := range percents {
			res, err := Split(gross, percent)
			assert.NoError(t, err)
			assert.Equal(t, gross, res.CommissionAmount+res.NetAmount,
				"gross=%d percent=%v", gross, percent)
			assert.GreaterOrEqual(t, res.CommissionAmount, int64(0))
			assert.GreaterOrEqual(t, res.NetAmount, int64(0))
		}
	}
}
