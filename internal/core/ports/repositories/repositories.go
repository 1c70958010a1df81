package repositories

import (
	"context"

	"github.com/pennyledger/pennyledger_app/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID retrieves an account by its ID.
	// Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts, newest-created first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount persists changes to an existing account's mutable fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the account and, via the FK cascade, all
	// transactions referencing it.
	DeleteAccount(ctx context.Context, accountID string) error
}

// TransactionRepository defines persistence operations for transactions.
// Mutations adjust the owning account's current balance atomically, in the
// same database transaction as the row change.
type TransactionRepository interface {
	// SaveTransaction inserts a new transaction and applies its signed amount
	// to the owning account's current balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves an account's transactions ordered by
	// transaction_date descending, ties broken by created_at descending.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its effect on the
	// owning account's current balance.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
