// Package money provides a monetary amount with proper financial
// precision plus locale-aware display formatting.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount backed by an arbitrary-precision
// decimal.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewFromDecimal creates a Money from a decimal.Decimal.
func NewFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromString creates a Money from a string.
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// MulRate multiplies the amount by a rate.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Display renders the amount as US dollars with thousands separators,
// e.g. "$1,500,000.00".
func (m Money) Display() string {
	cents := m.Decimal.Shift(2).Round(0).IntPart()
	return gomoney.New(cents, gomoney.USD).Display()
}
