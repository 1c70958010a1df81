package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/pennyledger/pennyledger_app/internal/core/ports/services"
)

// RegisterAPIRoutes wires the account, transaction, and dashboard handlers
// onto the (already authenticated) API route group.
func RegisterAPIRoutes(
	rg *gin.RouterGroup,
	accountService portssvc.AccountSvcFacade,
	transactionService portssvc.TransactionSvcFacade,
	dashboardService portssvc.DashboardSvcFacade,
) {
	accountHandler := NewAccountHandler(accountService)
	transactionHandler := NewTransactionHandler(transactionService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("", accountHandler.ListAccounts)
		accounts.GET("/:accountID", accountHandler.GetAccount)
		accounts.PUT("/:accountID", accountHandler.UpdateAccount)
		accounts.DELETE("/:accountID", accountHandler.DeleteAccount)

		accounts.GET("/:accountID/transactions", transactionHandler.ListTransactions)
		accounts.POST("/:accountID/transactions", transactionHandler.CreateTransaction)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.DELETE("/:transactionID", transactionHandler.DeleteTransaction)
	}

	rg.GET("/dashboard", dashboardHandler.GetDashboard)
}
