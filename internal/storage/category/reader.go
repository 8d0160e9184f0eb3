package category

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

const selectColumns = "id, user_id, name, type, description, created_at"

// ListByUser returns all of the user's categories ordered by type then name.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	rows, err := r.exec.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM categories WHERE user_id = $1 ORDER BY type ASC, name ASC",
		userID)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// ListByUserAndType returns the user's categories of one type ordered by name.
func (r *Reader) ListByUserAndType(ctx context.Context, userID uuid.UUID, categoryType Type) ([]*Category, error) {
	rows, err := r.exec.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM categories WHERE user_id = $1 AND type = $2 ORDER BY name ASC",
		userID, categoryType)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// FindByIDAndUser retrieves a category owned by the user. A missing row
// and a row owned by another user both return nil without error.
func (r *Reader) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Category, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM categories WHERE id = $1 AND user_id = $2",
		id, userID)

	category, err := scanRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// IsUsedInTransactions reports whether any transaction references the category.
func (r *Reader) IsUsedInTransactions(ctx context.Context, id uuid.UUID) (bool, error) {
	var used bool
	err := r.exec.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM transactions WHERE category_id = $1)",
		id).Scan(&used)
	if err != nil {
		return false, err
	}
	return used, nil
}

func collect(rows *sql.Rows) ([]*Category, error) {
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		category, err := scanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func scanRow(scan func(dest ...any) error) (*Category, error) {
	var category Category
	err := scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Type,
		&category.Description,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
