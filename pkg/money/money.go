package money

import "math"

// Balances and ledger arithmetic are kept in minor units (centavos) as
// integers. Major-unit floats only exist at the API boundary and are
// converted exactly once per value.

const minorPerMajor = 100

// ToMinor converts a major-unit amount (e.g. pesos) to minor units,
// rounding half away from zero.
func ToMinor(major float64) int64 {
	return int64(math.Round(major * minorPerMajor))
}

// ToMajor converts minor units back to a major-unit amount for display.
func ToMajor(minor int64) float64 {
	return float64(minor) / minorPerMajor
}
