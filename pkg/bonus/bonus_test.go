package bonus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testTiers = []Tier{
	{MinAmount: 500, Bonus: 50},
	{MinAmount: 1000, Bonus: 150},
}

func TestTierBonus(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected int64
	}{
		{name: "Exact lower tier", amount: 500, expected: 50},
		{name: "Exact upper tier", amount: 1000, expected: 150},
		{name: "Below all tiers", amount: 300, expected: 0},
		{name: "Between tiers matches lower", amount: 750, expected: 50},
		{name: "Above all tiers matches highest", amount: 5000, expected: 150},
		{name: "Zero amount", amount: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierBonus(tt.amount, testTiers))
		})
	}
}

func TestTierBonusNoTiers(t *testing.T) {
	assert.Equal(t, int64(0), TierBonus(1000, nil))
}

func TestTierBonusUnsortedInput(t *testing.T) {
	unsorted := []Tier{
		{MinAmount: 1000, Bonus: 150},
		{MinAmount: 500, Bonus: 50},
		{MinAmount: 2000, Bonus: 400},
	}
	// Highest qualifying threshold wins regardless of input order.
	assert.Equal(t, int64(400), TierBonus(2500, unsorted))
	assert.Equal(t, int64(150), TierBonus(1500, unsorted))
}

func TestCappedBonus(t *testing.T) {
	tests := []struct {
		name              string
		amount            int64
		monthlyCap        int64
		givenThisMonth    int64
		expectedBonus     int64
		expectedFull      int64
		expectedNewGiven  int64
		expectedWasLimited bool
	}{
		{
			name:   "First top-up under cap",
			amount: 1000, monthlyCap: 380, givenThisMonth: 0,
			expectedBonus: 150, expectedFull: 150, expectedNewGiven: 150, expectedWasLimited: false,
		},
		{
			name:   "Second top-up still under cap",
			amount: 1000, monthlyCap: 380, givenThisMonth: 150,
			expectedBonus: 150, expectedFull: 150, expectedNewGiven: 300, expectedWasLimited: false,
		},
		{
			name:   "Third top-up limited to remaining cap",
			amount: 1000, monthlyCap: 380, givenThisMonth: 300,
			expectedBonus: 80, expectedFull: 150, expectedNewGiven: 380, expectedWasLimited: true,
		},
		{
			name:   "Cap exhausted grants nothing",
			amount: 1000, monthlyCap: 380, givenThisMonth: 380,
			expectedBonus: 0, expectedFull: 150, expectedNewGiven: 380, expectedWasLimited: true,
		},
		{
			name:   "Counter past cap treated as exhausted",
			amount: 1000, monthlyCap: 380, givenThisMonth: 500,
			expectedBonus: 0, expectedFull: 150, expectedNewGiven: 500, expectedWasLimited: true,
		},
		{
			name:   "Zero cap disables limiting",
			amount: 1000, monthlyCap: 0, givenThisMonth: 999999,
			expectedBonus: 150, expectedFull: 150, expectedNewGiven: 1000149, expectedWasLimited: false,
		},
		{
			name:   "No tier match under cap",
			amount: 300, monthlyCap: 380, givenThisMonth: 0,
			expectedBonus: 0, expectedFull: 0, expectedNewGiven: 0, expectedWasLimited: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CappedBonus(tt.amount, tt.monthlyCap, tt.givenThisMonth, testTiers)
			assert.Equal(t, tt.expectedBonus, res.Bonus)
			assert.Equal(t, tt.expectedFull, res.FullBonus)
			assert.Equal(t, tt.expectedNewGiven, res.NewGivenThisMonth)
			assert.Equal(t, tt.expectedWasLimited, res.WasLimited)
		})
	}
}

func TestCappedBonusNeverExceedsCap(t *testing.T) {
	// Granting repeatedly must converge on the cap exactly.
	given := int64(0)
	for i := 0; i < 10; i++ {
		res := CappedBonus(1000, 380, given, testTiers)
		given = res.NewGivenThisMonth
		assert.LessOrEqual(t, given, int64(380))
	}
	assert.Equal(t, int64(380), given)
}

func TestMonthStart(t *testing.T) {
	ts := time.Date(2025, time.March, 17, 15, 42, 13, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), MonthStart(ts))
}

func TestMonthRolledOver(t *testing.T) {
	now := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		monthStart time.Time
		rolledOver bool
	}{
		{name: "Previous month is stale", monthStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), rolledOver: true},
		{name: "Current month start is fresh", monthStart: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), rolledOver: false},
		{name: "Zero time is stale", monthStart: time.Time{}, rolledOver: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rolledOver, MonthRolledOver(tt.monthStart, now))
		})
	}
}
