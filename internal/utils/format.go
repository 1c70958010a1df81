package utils

import "github.com/shopspring/decimal"

// Balance presentation classes consumed by the view layer.
const (
	BalancePositiveClass = "balance-positive"
	BalanceNegativeClass = "balance-negative"
)

// FormatAmount formats a monetary amount with two decimal places.
// Example: 12.3456 returns "12.35", 12 returns "12.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// BalanceClass returns the presentation class for a balance: non-negative
// balances use the positive class, negative balances the negative class.
func BalanceClass(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return BalanceNegativeClass
	}
	return BalancePositiveClass
}
