package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	portsrepo "github.com/pennyledger/pennyledger_app/internal/core/ports/repositories"
	portssvc "github.com/pennyledger/pennyledger_app/internal/core/ports/services"
	"github.com/pennyledger/pennyledger_app/internal/middleware"
	"github.com/pennyledger/pennyledger_app/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// recentTransactionLimit caps how many merged transactions the dashboard shows.
const recentTransactionLimit = 10

// DashboardService builds the read-only cross-account view: all accounts,
// their merged most-recent transactions, and summary statistics.
type DashboardService struct {
	AccountRepository     portsrepo.AccountRepository
	TransactionRepository portsrepo.TransactionRepository
}

func NewDashboardService(accRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *DashboardService {
	return &DashboardService{
		AccountRepository:     accRepo,
		TransactionRepository: txnRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

// GetDashboard lists all accounts, fetches each account's transactions
// concurrently, tags every transaction with its owning account's name, merges
// and sorts them by recency (transaction_date descending, created_at
// descending), and keeps the most recent ten. It also computes the total
// balance, account count, and total transaction count.
func (s *DashboardService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.AccountRepository.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts for dashboard", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	// Per-account fetches are independent; run them in parallel and merge
	// only after all of them complete.
	var mu sync.Mutex
	tagged := []domain.TaggedTransaction{}

	g, gctx := errgroup.WithContext(ctx)
	for _, account := range accounts {
		g.Go(func() error {
			transactions, err := s.TransactionRepository.ListTransactionsByAccount(gctx, account.AccountID)
			if err != nil {
				return fmt.Errorf("failed to list transactions for account %s: %w", account.AccountID, err)
			}

			// The full transaction set is in hand, so cross-check the stored
			// balance against the recomputed one. A mismatch is logged, not
			// fatal: the dashboard still renders with the stored value.
			if verr := accounting.VerifyBalance(account, transactions); verr != nil {
				logger.Warn("Stored balance does not match recomputed balance",
					slog.String("account_id", account.AccountID),
					slog.String("error", verr.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, txn := range transactions {
				tagged = append(tagged, domain.TaggedTransaction{
					Transaction: txn,
					AccountName: account.Name,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Failed to fetch transactions for dashboard", slog.String("error", err.Error()))
		return nil, err
	}

	sort.SliceStable(tagged, func(i, j int) bool {
		return tagged[i].MoreRecentThan(tagged[j].Transaction)
	})

	transactionCount := int64(len(tagged))
	if len(tagged) > recentTransactionLimit {
		tagged = tagged[:recentTransactionLimit]
	}

	return &domain.Dashboard{
		Accounts:           accounts,
		RecentTransactions: tagged,
		TotalBalance:       accounting.TotalBalance(accounts),
		AccountCount:       len(accounts),
		TransactionCount:   transactionCount,
	}, nil
}
