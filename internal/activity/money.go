package activity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for amounts that are not a number of
// dollars with at most two decimals.
var ErrInvalidAmount = errors.New("amount must be a number with at most two decimals")

// Money is an amount in cents. Sums and differences of Money are exact.
type Money int64

// Dollars converts a dollar amount to Money, rounding to the nearest cent.
func Dollars(v float64) Money {
	return fromDecimal(decimal.NewFromFloat(v).Round(2))
}

// ParseMoney parses a dollar amount such as "12", "12.5" or "$12.50".
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "$")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !d.Equal(d.Round(2)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return fromDecimal(d), nil
}

func fromDecimal(d decimal.Decimal) Money {
	return Money(d.Shift(2).IntPart())
}

// Decimal returns m in dollars.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Float64 returns m in dollars. Use it for ratios only.
func (m Money) Float64() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// String formats m as dollars, dropping zero cents: "$25", "$12.50",
// "-$5".
func (m Money) String() string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	places := int32(2)
	if m%100 == 0 {
		places = 0
	}
	return sign + "$" + m.Decimal().StringFixed(places)
}

// MarshalJSON encodes m as a dollar number, for example 12.5.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

// UnmarshalJSON accepts a dollar number or a quoted dollar string.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := ParseMoney(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
