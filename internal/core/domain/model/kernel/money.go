package kernel

import (
	"fmt"

	"tradelink/internal/pkg/errs"
)

// Money is a monetary amount stored as integer cents to avoid floating-point
// drift in order and trip totals. Negative amounts are invalid everywhere in
// the domain; subtraction that would go below zero is rejected so that trip
// aggregates can never drift negative.
type Money int64

// NewMoneyFromCents creates a Money value from an integer number of cents.
// Returns an error for negative amounts.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money(cents), nil
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m minus other. Returns an error when the result would be
// negative.
func (m Money) Sub(other Money) (Money, error) {
	if other > m {
		return 0, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("subtracting %d cents from %d cents would be negative",
				other.Cents(), m.Cents()))
	}
	return m - other, nil
}

// Mul returns the amount multiplied by a non-negative quantity.
// Used for line totals (rate times quantity).
func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// String renders the amount in decimal currency units, e.g. "123.45".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}

// Validate checks that the amount is not negative.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", int64(m)))
	}
	return nil
}
