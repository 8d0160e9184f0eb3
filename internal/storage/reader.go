package storage

import (
	"database/sql"

	"github.com/walletty/wallet-server/internal/storage/account"
	"github.com/walletty/wallet-server/internal/storage/category"
	"github.com/walletty/wallet-server/internal/storage/transaction"
	"github.com/walletty/wallet-server/internal/storage/user"
)

type Reader struct {
	Accounts     *account.Reader
	Categories   *category.Reader
	Transactions *transaction.Reader
	Users        *user.Reader
}

func NewReader(db *sql.DB) *Reader {
	return &Reader{
		Accounts:     account.NewReader(db),
		Categories:   category.NewReader(db),
		Transactions: transaction.NewReader(db),
		Users:        user.NewReader(db),
	}
}
