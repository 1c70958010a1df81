package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a named sub-ledger within the shared bank account.
// This is the primary representation used by services.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary Key (UUID)
	Name           string          `json:"name"`           // User-defined name, non-empty
	InitialBalance decimal.Decimal `json:"initialBalance"` // Set once at creation, immutable
	CurrentBalance decimal.Decimal `json:"currentBalance"` // InitialBalance plus the signed sum of live transactions
	CreatedAt      time.Time       `json:"createdAt"`
}
