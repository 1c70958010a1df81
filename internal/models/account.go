package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database representation of a sub-ledger account.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	CreatedAt      time.Time       `db:"created_at"`
}
