package bonus

import (
	"sort"
	"time"
)

// Top-up bonuses are a step function over the top-up amount, bounded by
// a rolling monthly cap on bonus granted. The cap limits free money
// given out, not the deposit amount itself; that asymmetry is a product
// rule and must not be simplified away.

// Tier awards Bonus for top-ups of at least MinAmount. Amounts are in
// minor units.
type Tier struct {
	MinAmount int64 `json:"minAmount"`
	Bonus     int64 `json:"bonus"`
}

// DefaultTiers apply when no tiers are configured: ₱500 earns ₱50,
// ₱1000 earns ₱150.
var DefaultTiers = []Tier{
	{MinAmount: 100000, Bonus: 15000},
	{MinAmount: 50000, Bonus: 5000},
}

// CapResult reports a capped bonus computation.
type CapResult struct {
	// Bonus actually granted after the cap.
	Bonus int64
	// FullBonus the tiers would have granted without a cap.
	FullBonus int64
	// NewGivenThisMonth is the wallet's cumulative granted bonus after
	// this top-up.
	NewGivenThisMonth int64
	// WasLimited is true when the cap reduced the grant.
	WasLimited bool
}

// TierBonus returns the bonus of the highest tier whose MinAmount the
// top-up meets, or 0 if no tier matches. Tiers are not cumulative.
func TierBonus(amount int64, tiers []Tier) int64 {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinAmount > sorted[j].MinAmount
	})

	for _, tier := range sorted {
		if tier.MinAmount <= amount {
			return tier.Bonus
		}
	}
	return 0
}

// CappedBonus computes the tier bonus for amount and applies the
// monthly cap. A cap of 0 disables capping entirely.
func CappedBonus(amount, monthlyCap, givenThisMonth int64, tiers []Tier) CapResult {
	fullBonus := TierBonus(amount, tiers)

	if monthlyCap == 0 {
		return CapResult{
			Bonus:             fullBonus,
			FullBonus:         fullBonus,
			NewGivenThisMonth: givenThisMonth + fullBonus,
			WasLimited:        false,
		}
	}

	remaining := monthlyCap - givenThisMonth
	if remaining < 0 {
		remaining = 0
	}
	granted := fullBonus
	if granted > remaining {
		granted = remaining
	}

	return CapResult{
		Bonus:             granted,
		FullBonus:         fullBonus,
		NewGivenThisMonth: givenThisMonth + granted,
		WasLimited:        granted < fullBonus,
	}
}

// MonthStart returns the first instant of t's calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthRolledOver reports whether a wallet's tracked bonus month is
// stale relative to now. The counter resets lazily at the next top-up
// rather than via a scheduled job.
func MonthRolledOver(bonusMonthStart, now time.Time) bool {
	return bonusMonthStart.Before(MonthStart(now))
}
