package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/storage/account"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

const defaultRecentLimit = 5

type accountReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.Account, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*account.Account, error)
}

type accountTransactionReader interface {
	Summary(ctx context.Context, accountID, userID uuid.UUID) (*transaction.Summary, error)
	Recent(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]*transaction.Transaction, error)
}

// AccountService handles account queries.
type AccountService struct {
	accounts     accountReader
	transactions accountTransactionReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts accountReader, transactions accountTransactionReader) *AccountService {
	return &AccountService{accounts: accounts, transactions: transactions}
}

// ListAccounts returns all accounts owned by the user, ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]Account, error) {
	rows, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = *accountFromStorage(row)
	}
	return converted, nil
}

// GetAccount retrieves one of the user's accounts. Accounts of other
// users are reported as ErrNotFound.
func (s *AccountService) GetAccount(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	row, err := s.accounts.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return accountFromStorage(row), nil
}

// GetSummary computes the derived income, expense, and balance totals
// of one of the user's accounts.
func (s *AccountService) GetSummary(ctx context.Context, accountID, userID uuid.UUID) (*Summary, error) {
	row, err := s.accounts.FindByIDAndUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	totals, err := s.transactions.Summary(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Income:  totals.Income,
		Expense: totals.Expense,
		Balance: totals.Balance,
	}, nil
}

// RecentTransactions returns the newest transactions of one of the
// user's accounts. A non-positive limit falls back to the default.
func (s *AccountService) RecentTransactions(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	row, err := s.accounts.FindByIDAndUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	rows, err := s.transactions.Recent(ctx, accountID, userID, limit)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}
