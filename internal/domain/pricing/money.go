package pricing

import (
	"fmt"
	"math"
)

// TaxPercent is the flat tax applied to every stay and activity estimate.
const TaxPercent = 10

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// FromAmount rounds a decimal currency amount to the nearest cent.
func FromAmount(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

// Percent returns p percent of m, rounded half away from zero to the cent.
func (m Money) Percent(p int64) Money {
	return Money{cents: int64(math.Round(float64(m.cents*p) / 100.0))}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, abs(m.cents%100))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
