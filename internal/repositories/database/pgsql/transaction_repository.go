package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pennyledger/pennyledger_app/internal/apperrors"
	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	portsrepo "github.com/pennyledger/pennyledger_app/internal/core/ports/repositories"
	"github.com/pennyledger/pennyledger_app/internal/models"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		Type:            models.TransactionType(d.Type),
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		CreatedAt:       d.CreatedAt,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		Type:            domain.TransactionType(m.Type),
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		CreatedAt:       m.CreatedAt,
	}
}

// SaveTransaction inserts a new transaction and applies its signed amount to
// the owning account's current balance. Both writes happen in one database
// transaction so no partial update is ever visible.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction for save: %w", apperrors.ErrStore, err)
	}
	defer tx.Rollback(ctx)

	// Lock the owning account row so concurrent mutations serialize on it.
	lockQuery := `
		SELECT account_id FROM accounts
		WHERE account_id = $1
		FOR UPDATE;
	`
	var lockedID string
	err = tx.QueryRow(ctx, lockQuery, modelTxn.AccountID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: account %s does not exist", apperrors.ErrNotFound, modelTxn.AccountID)
		}
		return fmt.Errorf("%w: failed to lock account %s: %w", apperrors.ErrStore, modelTxn.AccountID, err)
	}

	insertQuery := `
		INSERT INTO transactions (transaction_id, account_id, amount, type, description, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelTxn.TransactionID,
		modelTxn.AccountID,
		modelTxn.Amount,
		modelTxn.Type,
		modelTxn.Description,
		modelTxn.TransactionDate,
		modelTxn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
			}
			if pgErr.Code == "23503" { // FK violation
				return fmt.Errorf("%w: account %s does not exist", apperrors.ErrNotFound, modelTxn.AccountID)
			}
		}
		return fmt.Errorf("%w: failed to save transaction %s: %w", apperrors.ErrStore, modelTxn.TransactionID, err)
	}

	balanceQuery := `
		UPDATE accounts
		SET current_balance = current_balance + $2
		WHERE account_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, balanceQuery, modelTxn.AccountID, txn.SignedAmount())
	if err != nil {
		return fmt.Errorf("%w: failed to update balance for account %s: %w", apperrors.ErrStore, modelTxn.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, modelTxn.AccountID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction save: %w", apperrors.ErrStore, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, amount, type, description, transaction_date, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.Amount,
		&modelTxn.Type,
		&modelTxn.Description,
		&modelTxn.TransactionDate,
		&modelTxn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find transaction by ID %s: %w", apperrors.ErrStore, transactionID, err)
	}

	domainTxn := toDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactionsByAccount retrieves an account's transactions ordered by
// transaction date descending, ties broken by creation time descending.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, amount, type, description, transaction_date, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_date DESC, created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query transactions for account %s: %w", apperrors.ErrStore, accountID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.AccountID,
			&modelTxn.Amount,
			&modelTxn.Type,
			&modelTxn.Description,
			&modelTxn.TransactionDate,
			&modelTxn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction row for account %s: %w", apperrors.ErrStore, accountID, err)
		}
		transactions = append(transactions, toDomainTransaction(modelTxn))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: error iterating transaction rows for account %s: %w", apperrors.ErrStore, accountID, rows.Err())
	}

	return transactions, nil
}

// DeleteTransaction removes a transaction and reverses its effect on the
// owning account's balance, in one database transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction for delete: %w", apperrors.ErrStore, err)
	}
	defer tx.Rollback(ctx)

	// Fetch and lock the row so the balance reversal matches what is deleted.
	selectQuery := `
		SELECT transaction_id, account_id, amount, type, description, transaction_date, created_at
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`
	var modelTxn models.Transaction
	err = tx.QueryRow(ctx, selectQuery, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.Amount,
		&modelTxn.Type,
		&modelTxn.Description,
		&modelTxn.TransactionDate,
		&modelTxn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: failed to lock transaction %s for delete: %w", apperrors.ErrStore, transactionID, err)
	}

	deleteQuery := `
		DELETE FROM transactions
		WHERE transaction_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, deleteQuery, transactionID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete transaction %s: %w", apperrors.ErrStore, transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	domainTxn := toDomainTransaction(modelTxn)
	balanceQuery := `
		UPDATE accounts
		SET current_balance = current_balance - $2
		WHERE account_id = $1;
	`
	cmdTag, err = tx.Exec(ctx, balanceQuery, modelTxn.AccountID, domainTxn.SignedAmount())
	if err != nil {
		return fmt.Errorf("%w: failed to reverse balance for account %s: %w", apperrors.ErrStore, modelTxn.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s not found during balance reversal", apperrors.ErrNotFound, modelTxn.AccountID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit transaction delete: %w", apperrors.ErrStore, err)
	}
	return nil
}
