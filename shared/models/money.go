package models

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MinorUnitDigits is the precision the payment provider expects amounts in (grosz, cents).
const MinorUnitDigits = 2

var ErrInvalidAmount = errors.New("invalid amount")

// maxAmount is the largest amount whose minor-unit value fits in an int64.
var maxAmount = decimal.NewFromInt(math.MaxInt64).Shift(-MinorUnitDigits)

// ParseAmount parses a decimal amount such as "129.99". An empty string means no amount.
func ParseAmount(value string) (*decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidAmount, err.Error())
	}

	if amount.IsNegative() {
		return nil, errors.Wrap(ErrInvalidAmount, "amount cannot be negative")
	}

	if amount.Round(MinorUnitDigits).GreaterThan(maxAmount) {
		return nil, errors.Wrap(ErrInvalidAmount, "amount is too large")
	}

	return &amount, nil
}

// FormatAmount converts a decimal amount to provider minor units, rounding half away from zero.
func FormatAmount(amount *decimal.Decimal) *int64 {
	if amount == nil {
		return nil
	}

	minor := amount.Round(MinorUnitDigits).Shift(MinorUnitDigits).IntPart()
	return &minor
}

// Money represents a monetary amount in minor units
type Money struct {
	Amount   *int64 `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// NewMoney creates a new money value
func NewMoney(amount *int64, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}
