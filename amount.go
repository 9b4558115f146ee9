package omniagentpay

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount is a decimal quantity, such as "25.00". It is sent to the API
// verbatim as a JSON string and never passes through a float on the wire.
//
// Amounts taken from user input can be used directly; the helpers below
// convert numeric values.
type Amount string

// AmountFromInt returns the amount for an integer quantity.
func AmountFromInt(n int64) Amount {
	return Amount(strconv.FormatInt(n, 10))
}

// AmountFromFloat returns the shortest decimal representation of f,
// so 10.5 becomes "10.5".
func AmountFromFloat(f float64) Amount {
	return Amount(decimal.NewFromFloat(f).String())
}

// AmountFromDecimal returns the amount for d.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount(d.String())
}

// String returns the amount as sent on the wire.
func (a Amount) String() string {
	return string(a)
}

// Decimal parses the amount.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(a))
}

// IsPositive reports whether the amount parses as a decimal greater than zero.
func (a Amount) IsPositive() bool {
	d, err := a.Decimal()
	return err == nil && d.IsPositive()
}
