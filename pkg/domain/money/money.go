// Package money provides the fixed-point monetary value object used by the
// ledger. All monetary math in the system routes through this type; nothing
// else in the codebase is allowed to do arithmetic on raw amounts.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a monetary literal cannot be parsed,
// carries more than two fractional digits, is negative, or when an operation
// receives a non-positive amount.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// Scale is the number of fractional digits carried by every Money value.
const Scale = 2

// Money represents a non-negative monetary value with at most Scale
// fractional digits. The zero value is a valid Money of 0.00.
//
// Invariants:
//   - The amount is never negative.
//   - The amount's value is never finer than Scale fractional digits.
type Money struct {
	amount decimal.Decimal
}

// Parse creates a Money from a decimal literal such as "5000.00".
// Returns ErrInvalidAmount if the literal does not parse, is negative, or its
// value is finer than Scale fractional digits. Trailing zeros beyond Scale
// are fine: "5.000" is the same value as "5.00".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	if !d.Equal(d.Round(Scale)) {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: d}, nil
}

// MustParse is Parse for literals known to be valid, typically test fixtures.
// It panics on invalid input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a Money of 0.00.
func Zero() Money {
	return Money{}
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns m minus other. Returns ErrInvalidAmount when the result
// would be negative; Money never represents a negative value.
func (m Money) Subtract(other Money) (Money, error) {
	if other.amount.GreaterThan(m.amount) {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: m.amount.Sub(other.amount)}, nil
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equals reports whether m and other represent the same value.
// 5000 and 5000.00 compare equal.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the value with exactly Scale fractional digits, e.g. "4500.00".
func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}
