package dto

import (
	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	"github.com/pennyledger/pennyledger_app/internal/utils"
)

// RecentTransactionResponse is a transaction on the dashboard, tagged with its
// owning account's name.
type RecentTransactionResponse struct {
	TransactionResponse
	AccountName string `json:"accountName"`
}

// DashboardStatsResponse holds the dashboard's aggregate figures.
type DashboardStatsResponse struct {
	TotalBalance      string `json:"totalBalance"`
	TotalBalanceClass string `json:"totalBalanceClass"`
	AccountCount      int    `json:"accountCount"`
	TransactionCount  int64  `json:"transactionCount"`
}

// DashboardResponse is the full cross-account dashboard payload.
type DashboardResponse struct {
	Accounts           []AccountResponse           `json:"accounts"`
	RecentTransactions []RecentTransactionResponse `json:"recentTransactions"`
	Stats              DashboardStatsResponse      `json:"stats"`
}

// ToDashboardResponse converts the service's dashboard aggregate to the DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	recent := make([]RecentTransactionResponse, len(d.RecentTransactions))
	for i, tagged := range d.RecentTransactions {
		recent[i] = RecentTransactionResponse{
			TransactionResponse: ToTransactionResponse(&tagged.Transaction),
			AccountName:         tagged.AccountName,
		}
	}

	return DashboardResponse{
		Accounts:           ToListAccountResponse(d.Accounts),
		RecentTransactions: recent,
		Stats: DashboardStatsResponse{
			TotalBalance:      utils.FormatAmount(d.TotalBalance),
			TotalBalanceClass: utils.BalanceClass(d.TotalBalance),
			AccountCount:      d.AccountCount,
			TransactionCount:  d.TransactionCount,
		},
	}
}
