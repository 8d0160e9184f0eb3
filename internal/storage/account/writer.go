package account

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/currency"
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

// Insert creates a new account and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *Create) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = w.exec.ExecContext(ctx,
		"INSERT INTO accounts (id, user_id, name, currency) VALUES ($1, $2, $3, $4)",
		id, create.UserID, create.Name, create.Currency)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update renames an account or changes its currency. Past transactions
// are never converted. Returns false when no row matched.
func (w *Writer) Update(ctx context.Context, id, userID uuid.UUID, name string, code currency.Code) (bool, error) {
	result, err := w.exec.ExecContext(ctx,
		"UPDATE accounts SET name = $1, currency = $2 WHERE id = $3 AND user_id = $4",
		name, code, id, userID)
	if err != nil {
		return false, err
	}
	count, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes an account owned by the user. Callers must delete the
// account's transactions first; the foreign key rejects the delete
// otherwise. Returns false when no row matched.
func (w *Writer) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result, err := w.exec.ExecContext(ctx,
		"DELETE FROM accounts WHERE id = $1 AND user_id = $2",
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
