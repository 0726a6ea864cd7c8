package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrTooPrecise     = errors.New("amount has more than two decimal places")
)

const minorUnits = 2

// Money is an amount in minor units (1/100 of the currency unit).
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromCents is for values already validated by storage.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func FromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	scaled := d.Shift(minorUnits)
	if !scaled.Equal(scaled.Truncate(0)) {
		return Money{}, ErrTooPrecise
	}
	return Money{cents: scaled.IntPart()}, nil
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return FromDecimal(d)
}

func Zero() Money { return Money{} }

func (m Money) Cents() int64 { return m.cents }

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -minorUnits)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(minorUnits)
}

func (m Money) IsZero() bool     { return m.cents == 0 }
func (m Money) IsPositive() bool { return m.cents > 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	if n <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(n)}
}
