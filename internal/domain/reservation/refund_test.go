//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"court-reserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestTieredRefundPolicy_Fraction(t *testing.T) {
	policy := reservation.NewTieredRefundPolicy()

	cases := []struct {
		name     string
		hours    float64
		expected float64
	}{
		{name: "well over a day ahead", hours: 48, expected: 1.0},
		{name: "just over a day ahead", hours: 24.01, expected: 1.0},
		{name: "exactly 24 hours ahead", hours: 24, expected: 0.75},
		{name: "between 12 and 24 hours", hours: 18, expected: 0.75},
		{name: "exactly 12 hours ahead", hours: 12, expected: 0.5},
		{name: "between 2 and 12 hours", hours: 5, expected: 0.5},
		{name: "exactly 2 hours ahead", hours: 2, expected: 0.25},
		{name: "under 2 hours ahead", hours: 0.5, expected: 0.25},
		{name: "at slot start", hours: 0, expected: 0.0},
		{name: "after slot start", hours: -1, expected: 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, policy.Fraction(tc.hours))
		})
	}
}

func TestRefundValue(t *testing.T) {
	policy := reservation.NewTieredRefundPolicy()
	value := reservation.NewMoney(1000)
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		cancelAt      time.Time
		expectedCents int64
	}{
		{name: "full refund beyond 24 hours", cancelAt: start.Add(-25 * time.Hour), expectedCents: 1000},
		{name: "75% refund between 12 and 24 hours", cancelAt: start.Add(-18 * time.Hour), expectedCents: 750},
		{name: "50% refund between 2 and 12 hours", cancelAt: start.Add(-5 * time.Hour), expectedCents: 500},
		{name: "25% refund under 2 hours", cancelAt: start.Add(-30 * time.Minute), expectedCents: 250},
		{name: "no refund at start", cancelAt: start, expectedCents: 0},
		{name: "no refund after start", cancelAt: start.Add(time.Hour), expectedCents: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			refund := reservation.RefundValue(policy, value, start, tc.cancelAt)
			assert.Equal(t, tc.expectedCents, refund.Cents())
		})
	}
}

func TestMoney_MulFraction_RoundsToNearestCent(t *testing.T) {
	// 25% of an odd amount needs rounding: 1001 * 0.25 = 250.25
	assert.Equal(t, int64(250), reservation.NewMoney(1001).MulFraction(0.25).Cents())
	// 75% of 999 = 749.25
	assert.Equal(t, int64(749), reservation.NewMoney(999).MulFraction(0.75).Cents())
	// half a cent rounds up
	assert.Equal(t, int64(1), reservation.NewMoney(2).MulFraction(0.25).Cents())
}
