package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fraction digits kept for money values.
const AmountScale = 2

// ErrAmountIsNotConstructed is returned when an Amount was not created through NewAmount.
var ErrAmountIsNotConstructed = errs.NewValueIsRequiredError("amount must be created via NewAmount constructor")

// Amount is a non-negative money value rounded to two fraction digits, matching
// the decimal(10,2) columns it is stored in.
type Amount struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewAmount rounds value half away from zero to AmountScale digits and rejects negatives.
//
// Parameters:
//   - value: The money value; any scale is accepted
//
// Returns:
//   - Amount: The rounded amount
//   - error: ErrValueIsInvalid if value is negative
//
// Example:
//
//	a, err := kernel.NewAmount(decimal.RequireFromString("25.5"))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(a) // 25.50
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", value.String()))
	}

	return Amount{
		value: value.Round(AmountScale),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewAmount parses s and panics on failure. Intended for tests and constants.
func MustNewAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	a, err := NewAmount(d)
	if err != nil {
		panic(err)
	}
	return a
}

// Validate checks that the Amount was built by NewAmount.
func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String formats the amount with exactly two fraction digits.
func (a Amount) String() string {
	return a.value.StringFixed(AmountScale)
}
