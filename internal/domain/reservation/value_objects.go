package reservation

import (
	"errors"
	"fmt"
	"math"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// MulFraction scales the amount by a refund fraction, rounding to the
// nearest cent.
func (m Money) MulFraction(fraction float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * fraction))}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
