package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type Writer struct {
	exec executor
	Reader
}

func NewWriter(exec executor) *Writer {
	return &Writer{
		exec:   exec,
		Reader: Reader{exec: exec},
	}
}

// Insert creates a new transaction and returns its generated ID.
// Referential failures (unknown account or category) surface as the
// driver's foreign key error and are left to the caller to log.
func (w *Writer) Insert(ctx context.Context, create *Create) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = w.exec.ExecContext(ctx,
		"INSERT INTO transactions (id, account_id, category_id, amount, date, description) VALUES ($1, $2, $3, $4, $5, $6)",
		id, create.AccountID, create.CategoryID, create.Amount, create.Date, create.Description)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete removes one transaction, verifying through the accounts join
// that it belongs to the user. Returns false when no row matched.
func (w *Writer) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result, err := w.exec.ExecContext(ctx,
		`DELETE FROM transactions t
		 USING accounts a
		 WHERE t.id = $1 AND t.account_id = a.id AND a.user_id = $2`,
		id, userID)
	if err != nil {
		return false, err
	}
	count, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByAccount removes every transaction of one account. Ownership
// of the account must already be verified by the caller inside the same
// storage transaction.
func (w *Writer) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	_, err := w.exec.ExecContext(ctx,
		"DELETE FROM transactions WHERE account_id = $1",
		accountID)
	return err
}
