package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

type Reader struct {
	exec executor
}

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const selectColumns = "id, user_id, name, currency, created_at"

// ListByUser returns all of the user's accounts ordered by name.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	rows, err := r.exec.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM accounts WHERE user_id = $1 ORDER BY name ASC, id ASC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		account, err := scanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}

// FindByIDAndUser retrieves an account owned by the user. A missing row
// and a row owned by another user both return nil without error, so
// callers cannot distinguish foreign accounts from absent ones.
func (r *Reader) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM accounts WHERE id = $1 AND user_id = $2",
		id, userID)

	account, err := scanRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func scanRow(scan func(dest ...any) error) (*Account, error) {
	var account Account
	err := scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Currency,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
