package domain

import "github.com/shopspring/decimal"

// TaggedTransaction is a transaction annotated with its owning account's
// display name, as shown on the cross-account dashboard.
type TaggedTransaction struct {
	Transaction
	AccountName string `json:"accountName"`
}

// Dashboard is the read-only cross-account aggregation: all accounts, the most
// recent transactions across them, and summary statistics. It is computed on
// demand and never persisted.
type Dashboard struct {
	Accounts           []Account
	RecentTransactions []TaggedTransaction
	TotalBalance       decimal.Decimal
	AccountCount       int
	TransactionCount   int64
}
