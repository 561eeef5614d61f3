package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyExponents maps ISO 4217 codes to their minor-unit exponent.
// Codes not listed fall back to 2 (cents).
var currencyExponents = map[string]int32{
	"VND": 0,
	"JPY": 0,
	"KRW": 0,
	"IDR": 0,
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"THB": 2,
	"SGD": 2,
	"AUD": 2,
}

// MinorUnits converts a stored decimal amount into an integer count of the
// currency's smallest unit (75000.00 VND -> 75000, 9.99 USD -> 999).
// The conversion stays in decimal arithmetic end to end; no float is involved.
func MinorUnits(amount decimal.Decimal, currencyCode string) int64 {
	exp, ok := currencyExponents[strings.ToUpper(currencyCode)]
	if !ok {
		exp = 2
	}
	return amount.Shift(exp).IntPart()
}

// MinorUnitsPtr is MinorUnits for nullable amounts, preserving absence.
func MinorUnitsPtr(amount decimal.NullDecimal, currencyCode string) *int64 {
	if !amount.Valid {
		return nil
	}
	v := MinorUnits(amount.Decimal, currencyCode)
	return &v
}
