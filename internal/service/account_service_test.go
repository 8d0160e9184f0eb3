package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/walletty/wallet-server/internal/currency"
	"github.com/walletty/wallet-server/internal/storage/account"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

// mockAccountReader is a mock for accountReader.
type mockAccountReader struct {
	mock.Mock
}

func (m *mockAccountReader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *mockAccountReader) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

// mockAccountTransactionReader is a mock for accountTransactionReader.
type mockAccountTransactionReader struct {
	mock.Mock
}

func (m *mockAccountTransactionReader) Summary(ctx context.Context, accountID, userID uuid.UUID) (*transaction.Summary, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Summary), args.Error(1)
}

func (m *mockAccountTransactionReader) Recent(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, accountID, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func newAccountTestService() (*AccountService, *mockAccountReader, *mockAccountTransactionReader) {
	accounts := &mockAccountReader{}
	transactions := &mockAccountTransactionReader{}
	return NewAccountService(accounts, transactions), accounts, transactions
}

func makeStorageAccount(userID uuid.UUID, name string, code currency.Code) *account.Account {
	return &account.Account{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Name:      name,
		Currency:  code,
		CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestListAccounts_Success(t *testing.T) {
	svc, accounts, _ := newAccountTestService()
	userID := uuid.Must(uuid.NewV4())

	rows := []*account.Account{
		makeStorageAccount(userID, "Cash", currency.EUR),
		makeStorageAccount(userID, "Savings", currency.USD),
	}
	accounts.On("ListByUser", mock.Anything, userID).Return(rows, nil)

	result, err := svc.ListAccounts(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Cash", result[0].Name)
	assert.Equal(t, currency.EUR, result[0].Currency)
	assert.Equal(t, rows[1].ID, result[1].ID)
	accounts.AssertExpectations(t)
}

func TestListAccounts_Empty(t *testing.T) {
	svc, accounts, _ := newAccountTestService()
	userID := uuid.Must(uuid.NewV4())

	accounts.On("ListByUser", mock.Anything, userID).Return([]*account.Account{}, nil)

	result, err := svc.ListAccounts(context.Background(), userID)
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetAccount_NotOwned(t *testing.T) {
	svc, accounts, _ := newAccountTestService()
	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	accounts.On("FindByIDAndUser", mock.Anything, accountID, userID).Return(nil, nil)

	result, err := svc.GetAccount(context.Background(), accountID, userID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAccount_StorageError(t *testing.T) {
	svc, accounts, _ := newAccountTestService()
	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	accounts.On("FindByIDAndUser", mock.Anything, accountID, userID).
		Return(nil, errors.New("connection refused"))

	result, err := svc.GetAccount(context.Background(), accountID, userID)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetSummary_Success(t *testing.T) {
	svc, accounts, transactions := newAccountTestService()
	userID := uuid.Must(uuid.NewV4())
	row := makeStorageAccount(userID, "Cash", currency.EUR)

	accounts.On("FindByIDAndUser", mock.Anything, row.ID, userID).Return(row, nil)
	transactions.On("Summary", mock.Anything, row.ID, userID).Return(&transaction.Summary{
		Income:  decimal.RequireFromString("300.00"),
		Expense: decimal.RequireFromString("100.00"),
		Balance: decimal.RequireFromString("200.00"),
	}, nil)

	summary, err := svc.GetSummary(context.Background(), row.ID, userID)
	assert.NoError(t, err)
	assert.True(t, summary.Income.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, summary.Expense.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("200.00")))
}

func TestGetSummary_NotOwned(t *testing.T) {
	svc, accounts, transactions := newAccountTestService()
	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	accounts.On("FindByIDAndUser", mock.Anything, accountID, userID).Return(nil, nil)

	summary, err := svc.GetSummary(context.Background(), accountID, userID)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrNotFound)
	transactions.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecentTransactions_DefaultLimit(t *testing.T) {
	svc, accounts, transactions := newAccountTestService()
	userID := uuid.Must(uuid.NewV4())
	row := makeStorageAccount(userID, "Cash", currency.EUR)

	accounts.On("FindByIDAndUser", mock.Anything, row.ID, userID).Return(row, nil)
	transactions.On("Recent", mock.Anything, row.ID, userID, defaultRecentLimit).
		Return([]*transaction.Transaction{}, nil)

	result, err := svc.RecentTransactions(context.Background(), row.ID, userID, 0)
	assert.NoError(t, err)
	assert.Empty(t, result)
	transactions.AssertExpectations(t)
}
