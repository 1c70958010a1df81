package dto

import (
	"time"

	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	"github.com/pennyledger/pennyledger_app/internal/utils"
)

// CreateAccountRequest defines the data needed to create a new account.
// InitialBalance is the raw form value; blank or invalid input is coerced to
// zero by the service.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required"`
	InitialBalance string `json:"initialBalance"` // Optional, decimal string
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name *string `json:"name"` // Optional: new name
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string    `json:"accountID"`
	Name           string    `json:"name"`
	InitialBalance string    `json:"initialBalance"`
	CurrentBalance string    `json:"currentBalance"`
	BalanceClass   string    `json:"balanceClass"` // Presentation hint for the view layer
	CreatedAt      time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		InitialBalance: utils.FormatAmount(acc.InitialBalance),
		CurrentBalance: utils.FormatAmount(acc.CurrentBalance),
		BalanceClass:   utils.BalanceClass(acc.CurrentBalance),
		CreatedAt:      acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
