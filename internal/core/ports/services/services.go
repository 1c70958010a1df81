package services

import (
	"context"

	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	"github.com/pennyledger/pennyledger_app/internal/dto"
)

// AccountSvcFacade defines the account aggregate operations consumed by handlers.
type AccountSvcFacade interface {
	// CreateAccount validates and persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts, newest-created first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account and all its transactions.
	DeleteAccount(ctx context.Context, accountID string) error
}

// TransactionSvcFacade defines the ledger operations consumed by handlers.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a new transaction against an account.
	CreateTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions retrieves an account's transactions in recency order.
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction, restoring the owning account's balance.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// DashboardSvcFacade defines the read-only cross-account aggregation.
type DashboardSvcFacade interface {
	// GetDashboard builds the cross-account dashboard view.
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
}
