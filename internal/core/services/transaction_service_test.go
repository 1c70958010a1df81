package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pennyledger/pennyledger_app/internal/apperrors"
	"github.com/pennyledger/pennyledger_app/internal/core/domain"
	"github.com/pennyledger/pennyledger_app/internal/core/services"
	"github.com/pennyledger/pennyledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	mockAccRepo *MockAccountRepository
	service     *services.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccRepo = new(MockAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccRepo)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(50.00),
		Type:        "credit",
		Description: "Paycheck",
		Date:        "2024-03-15",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(accountID, txn.AccountID)
	suite.Equal(domain.Credit, txn.Type)
	suite.Equal("Paycheck", txn.Description)
	suite.True(decimal.NewFromFloat(50.00).Equal(txn.Amount))
	suite.Equal(2024, txn.TransactionDate.Year())
	suite.Equal(time.March, txn.TransactionDate.Month())
	suite.Equal(15, txn.TransactionDate.Day())
	suite.WithinDuration(time.Now(), txn.CreatedAt, time.Second)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(-30.00),
		Type:        "debit",
		Description: "Groceries",
	}

	// Non-positive amounts are rejected outright, never normalized and stored.
	txn, err := suite.service.CreateTransaction(ctx, accountID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ZeroAmount_NoStoreCall() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.Zero,
		Type:        "credit",
		Description: "Nothing",
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_EmptyDescription_NoStoreCall() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(10.00),
		Type:        "debit",
		Description: "   ",
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownTypeRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(10.00),
		Type:        "transfer",
		Description: "Move money",
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TypeNormalizedToLowercase() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(10.00),
		Type:        "DEBIT",
		Description: "Coffee",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Debit
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().NoError(err)
	suite.Equal(domain.Debit, txn.Type)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BlankDateDefaultsToToday() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(10.00),
		Type:        "credit",
		Description: "Refund",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().NoError(err)
	now := time.Now()
	suite.Equal(now.Year(), txn.TransactionDate.Year())
	suite.Equal(now.Month(), txn.TransactionDate.Month())
	suite.Equal(now.Day(), txn.TransactionDate.Day())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MalformedDateRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(10.00),
		Type:        "credit",
		Description: "Refund",
		Date:        "15/03/2024",
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountMissing() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.NewFromFloat(10.00),
		Type:        "debit",
		Description: "Orphan",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, accountID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Name: "Checking"}
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: accountID},
		{TransactionID: uuid.NewString(), AccountID: accountID},
	}

	suite.mockAccRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByAccount", ctx, accountID).Return(expected, nil).Once()

	transactions, err := suite.service.ListTransactions(ctx, accountID)

	suite.Require().NoError(err)
	suite.Equal(expected, transactions)
	suite.mockAccRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	transactions, err := suite.service.ListTransactions(ctx, accountID)

	suite.Require().Error(err)
	suite.Nil(transactions)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccount", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{TransactionID: txnID, AccountID: uuid.NewString()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, txnID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
