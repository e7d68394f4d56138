package reservation

import "time"

// RefundPolicy maps the lead time before a slot's start to the fraction of
// the paid value returned on cancellation. Stateless by contract.
type RefundPolicy interface {
	Fraction(hoursUntilStart float64) float64
}

// TieredRefundPolicy is the step function used for court cancellations.
// Each threshold is a strict greater-than: cancelling exactly 24 hours out
// falls into the 75% tier, exactly 2 hours out into the 25% tier, and at or
// after the slot start nothing is refunded.
type TieredRefundPolicy struct{}

func NewTieredRefundPolicy() RefundPolicy {
	return TieredRefundPolicy{}
}

func (TieredRefundPolicy) Fraction(hoursUntilStart float64) float64 {
	switch {
	case hoursUntilStart > 24:
		return 1.0
	case hoursUntilStart > 12:
		return 0.75
	case hoursUntilStart > 2:
		return 0.5
	case hoursUntilStart > 0:
		return 0.25
	default:
		return 0.0
	}
}

// RefundValue computes the amount owed when a reservation is cancelled at
// `now` for a slot starting at `startTime`.
func RefundValue(policy RefundPolicy, value Money, startTime, now time.Time) Money {
	hours := startTime.Sub(now).Hours()
	return value.MulFraction(policy.Fraction(hours))
}
