package account

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/walletty/wallet-server/internal/currency"
	"github.com/walletty/wallet-server/internal/service"
)

// mockAccountSummarizer is a mock for accountSummarizer.
type mockAccountSummarizer struct {
	mock.Mock
}

func (m *mockAccountSummarizer) GetAccount(ctx context.Context, id, userID uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountSummarizer) GetSummary(ctx context.Context, accountID, userID uuid.UUID) (*service.Summary, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Summary), args.Error(1)
}

func (m *mockAccountSummarizer) RecentTransactions(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]service.Transaction, error) {
	args := m.Called(ctx, accountID, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc accountSummarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAccountSummaryHandler(svc).Register(api)
	return api
}

func TestAccountSummary_Success(t *testing.T) {
	svc := &mockAccountSummarizer{}
	api := newSummaryTestAPI(t, svc)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	svc.On("GetAccount", mock.Anything, accountID, userID).Return(&service.Account{
		ID:        accountID,
		Name:      "Cash",
		Currency:  currency.EUR,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	svc.On("GetSummary", mock.Anything, accountID, userID).Return(&service.Summary{
		Income:  decimal.RequireFromString("300"),
		Expense: decimal.RequireFromString("100"),
		Balance: decimal.RequireFromString("200"),
	}, nil)
	svc.On("RecentTransactions", mock.Anything, accountID, userID, 0).
		Return([]service.Transaction{
			{
				ID:           uuid.Must(uuid.NewV4()),
				AccountID:    accountID,
				CategoryID:   uuid.Must(uuid.NewV4()),
				Amount:       decimal.RequireFromString("100"),
				Date:         time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC),
				CategoryName: "Groceries",
				CategoryType: "expense",
			},
		}, nil)

	resp := api.Get("/v1/accounts/"+accountID.String()+"/summary",
		"X-User-ID: "+userID.String())
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"balance":"200"`)
	assert.Contains(t, resp.Body.String(), `"Groceries"`)
	svc.AssertExpectations(t)
}

func TestAccountSummary_ForeignAccount(t *testing.T) {
	svc := &mockAccountSummarizer{}
	api := newSummaryTestAPI(t, svc)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	svc.On("GetAccount", mock.Anything, accountID, userID).Return(nil, service.ErrNotFound)

	resp := api.Get("/v1/accounts/"+accountID.String()+"/summary",
		"X-User-ID: "+userID.String())
	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertNotCalled(t, "GetSummary", mock.Anything, mock.Anything, mock.Anything)
}
