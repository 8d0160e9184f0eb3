package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/storage/account"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

type transactionReader interface {
	ListByAccount(ctx context.Context, accountID, userID uuid.UUID, filter *transaction.Filter) ([]*transaction.Transaction, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error)
}

type transactionAccountReader interface {
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*account.Account, error)
}

// TransactionService handles transaction queries.
type TransactionService struct {
	transactions transactionReader
	accounts     transactionAccountReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactions transactionReader, accounts transactionAccountReader) *TransactionService {
	return &TransactionService{transactions: transactions, accounts: accounts}
}

// ListTransactions returns the transactions of one of the user's
// accounts, newest first, optionally narrowed by category and an
// inclusive date range. The account ownership check runs first so a
// foreign account reads as ErrNotFound rather than an empty list.
func (s *TransactionService) ListTransactions(ctx context.Context, accountID, userID uuid.UUID, filter *TransactionFilter) ([]Transaction, error) {
	row, err := s.accounts.FindByIDAndUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	var storageFilter *transaction.Filter
	if filter != nil {
		if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
			return nil, NewValidationError("start_date", "must not be after end_date")
		}
		storageFilter = &transaction.Filter{
			CategoryID: filter.CategoryID,
			StartDate:  filter.StartDate,
			EndDate:    filter.EndDate,
		}
	}

	rows, err := s.transactions.ListByAccount(ctx, accountID, userID, storageFilter)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// GetTransaction retrieves one of the user's transactions through the
// account join. Transactions of other users are reported as
// ErrNotFound.
func (s *TransactionService) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	row, err := s.transactions.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return transactionFromStorage(row), nil
}
