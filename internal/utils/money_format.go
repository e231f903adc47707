package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimals exposed for INR and foreign amounts.
const MoneyPrecision = 2

// RoundMoney rounds an amount for external exposure.
// Example: 1560.6000 returns 1560.6, 12.345 returns 12.35
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// FormatMoney renders an amount with exactly two decimals.
// Example: 10230.6 returns "10230.60"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}

// ToMinorUnits converts rupees to paise, rounding to the nearest paisa.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(MoneyPrecision).Round(0).IntPart()
}
