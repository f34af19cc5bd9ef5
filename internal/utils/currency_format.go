package utils

import (
	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of decimal places amounts are rendered with.
const moneyPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney renders an amount with two decimal places, keeping trailing zeros ("1500.00").
func FormatMoney(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, moneyPrecision)
}
