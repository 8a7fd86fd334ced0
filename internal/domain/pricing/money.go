package pricing

import (
	"errors"
	"math"
)

var (
	ErrNegativeMoney   = errors.New("money cannot be negative")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
)

// Money is an amount in integer cents of whatever currency the hotel
// charges in. All catalog prices and room rates are whole currency units,
// so every figure stays exact.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// FromUnits builds Money from a whole number of currency units.
func FromUnits(units int64) Money {
	return Money{cents: units * 100}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulInt(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Scale multiplies by an arbitrary factor, rounding to the nearest cent.
func (m Money) Scale(factor float64) Money {
	cents := int64(math.Round(float64(m.cents) * factor))
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

// ApplyPercentOff reduces the amount by the given discount percent.
func (m Money) ApplyPercentOff(d DiscountPercent) Money {
	return m.Scale((100.0 - d.Value()) / 100.0)
}

// DiscountPercent is a validated percentage in [0, 100].
type DiscountPercent struct {
	value float64
}

func NewDiscountPercent(value float64) (DiscountPercent, error) {
	if value < 0 || value > 100 {
		return DiscountPercent{}, ErrInvalidDiscount
	}
	return DiscountPercent{value: value}, nil
}

func (d DiscountPercent) Value() float64 {
	return d.value
}

func (d DiscountPercent) IsZero() bool {
	return d.value == 0
}
