package accounting

import (
	"fmt"

	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBalance re-derives an account's current balance from its initial
// balance and live transaction set: initial + Σcredits − Σdebits.
func ComputeBalance(initialBalance decimal.Decimal, transactions []domain.Transaction) decimal.Decimal {
	balance := initialBalance
	for _, txn := range transactions {
		balance = balance.Add(txn.SignedAmount())
	}
	return balance
}

// VerifyBalance checks that an account's stored current balance matches the
// balance re-derived from its transactions.
func VerifyBalance(account domain.Account, transactions []domain.Transaction) error {
	expected := ComputeBalance(account.InitialBalance, transactions)
	if !account.CurrentBalance.Equal(expected) {
		return fmt.Errorf("account %s balance mismatch: stored %s, derived %s",
			account.AccountID, account.CurrentBalance.String(), expected.String())
	}
	return nil
}

// TotalBalance sums the current balances of the given accounts.
func TotalBalance(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.CurrentBalance)
	}
	return total
}
