package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the allowed values of the transactions.type column.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Transaction is the database representation of a single credit or debit
// against an account.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"` // Always stored non-negative
	Type            TransactionType `db:"type"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}
