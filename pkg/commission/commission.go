package commission

import (
	"errors"
	"math"
)

// Split is the single source of truth for commission math. Every
// caller (earnings, settlement totals, analytics) goes through it so
// the commission + net == gross invariant holds system-wide.

var (
	ErrNegativeGross  = errors.New("gross amount cannot be negative")
	ErrInvalidPercent = errors.New("commission percent must be between 0 and 100")
)

// Result is a commission/net split of a gross amount. All values are
// integers in minor units.
type Result struct {
	CommissionAmount int64
	NetAmount        int64
}

// Split computes the platform commission and branch net from a gross
// amount. Rounding is half away from zero, matching the reference
// behavior (5% of 333 is 17, not 16).
func Split(grossAmount int64, commissionPercent float64) (Result, error) {
	if grossAmount < 0 {
		return Result{}, ErrNegativeGross
	}
	if commissionPercent < 0 || commissionPercent > 100 {
		return Result{}, ErrInvalidPercent
	}

	commissionAmount := int64(math.Round(float64(grossAmount) * commissionPercent / 100))
	return Result{
		CommissionAmount: commissionAmount,
		NetAmount:        grossAmount - commissionAmount,
	}, nil
}
