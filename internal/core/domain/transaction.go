package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction increases or decreases the
// owning account's balance.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// ParseTransactionType normalizes a user-supplied type string to one of the
// two enumerated values.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction represents a single credit or debit event against exactly one account.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`   // Primary Key (UUID)
	AccountID       string          `json:"accountID"`       // FK -> Account.accountID (Not Null)
	Amount          decimal.Decimal `json:"amount"`          // Absolute magnitude; sign is implied by Type
	Type            TransactionType `json:"type"`            // credit or debit
	Description     string          `json:"description"`     // Non-empty
	TransactionDate time.Time       `json:"transactionDate"` // User-chosen calendar date
	CreatedAt       time.Time       `json:"createdAt"`       // Tie-breaker for same-date ordering
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for credits, negative for debits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// MoreRecentThan reports whether t ranks before other under the recency rule
// used for transaction listings: transaction_date descending, ties broken by
// created_at descending.
func (t Transaction) MoreRecentThan(other Transaction) bool {
	if !t.TransactionDate.Equal(other.TransactionDate) {
		return t.TransactionDate.After(other.TransactionDate)
	}
	return t.CreatedAt.After(other.CreatedAt)
}
