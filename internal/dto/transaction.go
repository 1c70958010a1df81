package dto

import (
	"time"

	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	"github.com/pennyledger/pennyledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction
// against an account. Date is an optional YYYY-MM-DD string; when omitted the
// service defaults it to today.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Date        string          `json:"date"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string    `json:"transactionID"`
	AccountID       string    `json:"accountID"`
	Amount          string    `json:"amount"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	TransactionDate string    `json:"transactionDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Amount:          utils.FormatAmount(txn.Amount),
		Type:            string(txn.Type),
		Description:     txn.Description,
		TransactionDate: txn.TransactionDate.Format("2006-01-02"),
		CreatedAt:       txn.CreatedAt,
	}
}

// ListTransactionsResponse wraps an account's transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: res}
}
