package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pennyledger/pennyledger_app/internal/apperrors"
	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	portsrepo "github.com/pennyledger/pennyledger_app/internal/core/ports/repositories"
	portssvc "github.com/pennyledger/pennyledger_app/internal/core/ports/services"
	"github.com/pennyledger/pennyledger_app/internal/dto"
	"github.com/pennyledger/pennyledger_app/internal/middleware"
)

const dateLayout = "2006-01-02"

// TransactionService implements the ledger rules: input validation, sign and
// type normalization, and date defaulting, before handing off to the
// repository.
type TransactionService struct {
	TransactionRepository portsrepo.TransactionRepository
	AccountRepository     portsrepo.AccountRepository
}

func NewTransactionService(txnRepo portsrepo.TransactionRepository, accRepo portsrepo.AccountRepository) *TransactionService {
	return &TransactionService{
		TransactionRepository: txnRepo,
		AccountRepository:     accRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// CreateTransaction validates and records a transaction against an account.
// The amount must be positive and the description non-empty; neither check
// touches the repository. The amount is stored as its absolute value, the
// type is normalized to credit/debit, and a blank date defaults to today's
// local calendar date.
func (s *TransactionService) CreateTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", apperrors.ErrValidation)
	}

	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now()
	// Today's calendar date in the user's locale, midnight local time.
	transactionDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.Date), time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
		}
		transactionDate = parsed
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Amount:          req.Amount.Abs(),
		Type:            txnType,
		Description:     description,
		TransactionDate: transactionDate,
		CreatedAt:       now,
	}

	if err := s.TransactionRepository.SaveTransaction(ctx, txn); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", accountID),
		slog.String("type", string(txnType)),
	)
	return &txn, nil
}

// ListTransactions retrieves an account's transactions ordered by transaction
// date descending, ties broken by creation time descending. The account must
// exist.
func (s *TransactionService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.AccountRepository.FindAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve account for transaction listing", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	transactions, err := s.TransactionRepository.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}

	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction. The owning account's balance is
// restored to its pre-creation value as part of the same store transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.TransactionRepository.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve transaction for deletion", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}

	if err := s.TransactionRepository.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}

	logger.Info("Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("account_id", txn.AccountID),
	)
	return nil
}
