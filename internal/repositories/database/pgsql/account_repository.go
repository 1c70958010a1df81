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

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		InitialBalance: d.InitialBalance,
		CurrentBalance: d.CurrentBalance,
		CreatedAt:      d.CreatedAt,
	}
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		InitialBalance: m.InitialBalance,
		CurrentBalance: m.CurrentBalance,
		CreatedAt:      m.CreatedAt,
	}
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, initial_balance, current_balance, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.InitialBalance,
		modelAcc.CurrentBalance,
		modelAcc.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
			}
		}
		return fmt.Errorf("%w: failed to save account %s: %w", apperrors.ErrStore, modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, initial_balance, current_balance, created_at
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAcc models.Account
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.InitialBalance,
		&modelAcc.CurrentBalance,
		&modelAcc.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find account by ID %s: %w", apperrors.ErrStore, accountID, err)
	}

	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves all accounts, newest-created first.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, name, initial_balance, current_balance, created_at
		FROM accounts
		ORDER BY created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query accounts: %w", apperrors.ErrStore, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.InitialBalance,
			&modelAcc.CurrentBalance,
			&modelAcc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan account row: %w", apperrors.ErrStore, err)
		}
		accounts = append(accounts, toDomainAccount(modelAcc))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: error iterating account rows: %w", apperrors.ErrStore, rows.Err())
	}

	return accounts, nil
}

// UpdateAccount updates an existing account's mutable fields.
// Initial balance and creation timestamp are immutable and never touched here.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2
		WHERE account_id = $1;
	`

	cmdTag, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
	)

	if err != nil {
		return fmt.Errorf("%w: failed to execute update account %s: %w", apperrors.ErrStore, modelAcc.AccountID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeleteAccount removes the account. The transactions FK is declared with
// ON DELETE CASCADE, so all transactions referencing it are removed as well.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `
		DELETE FROM accounts
		WHERE account_id = $1;
	`

	cmdTag, err := r.pool.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("%w: failed to execute delete account %s: %w", apperrors.ErrStore, accountID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
