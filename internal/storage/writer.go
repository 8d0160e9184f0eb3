package storage

import (
	"database/sql"

	"github.com/walletty/wallet-server/internal/storage/account"
	"github.com/walletty/wallet-server/internal/storage/category"
	"github.com/walletty/wallet-server/internal/storage/transaction"
	"github.com/walletty/wallet-server/internal/storage/user"
)

// Writer bundles the per-entity writers over one database transaction.
// Either Commit or Rollback must be called exactly once.
type Writer struct {
	tx           *sql.Tx
	Accounts     *account.Writer
	Categories   *category.Writer
	Transactions *transaction.Writer
	Users        *user.Writer
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     account.NewWriter(tx),
		Categories:   category.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
		Users:        user.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
