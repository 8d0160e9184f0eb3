package service

import (
	"github.com/walletty/wallet-server/internal/storage"
)

// Service holds all query-side business logic services. Mutations go
// through the operator instead.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Statistics  *StatisticsService
	User        *UserService
}

// NewService creates a new Service backed by the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store.Reader.Accounts, store.Reader.Transactions),
		Category:    NewCategoryService(store.Reader.Categories),
		Transaction: NewTransactionService(store.Reader.Transactions, store.Reader.Accounts),
		Statistics:  NewStatisticsService(store.Reader.Transactions, store.Reader.Accounts),
		User:        NewUserService(store.Reader.Users),
	}
}
