package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/storage/category"
)

type Reader struct {
	exec executor
}

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const selectJoined = `SELECT t.id, t.account_id, t.category_id, t.amount, t.date, t.description,
       c.name, c.type
FROM transactions t
JOIN categories c ON t.category_id = c.id
JOIN accounts a ON t.account_id = a.id`

// ListByAccount returns the account's transactions newest first,
// optionally narrowed by category and calendar date range. Ownership is
// enforced by the accounts join, never by trusting the account id.
func (r *Reader) ListByAccount(ctx context.Context, accountID, userID uuid.UUID, filter *Filter) ([]*Transaction, error) {
	query := selectJoined + " WHERE t.account_id = $1 AND a.user_id = $2"
	args := []any{accountID, userID}

	if filter != nil {
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			query += fmt.Sprintf(" AND t.category_id = $%d", len(args))
		}
		if filter.StartDate != nil {
			args = append(args, *filter.StartDate)
			query += fmt.Sprintf(" AND t.date::date >= $%d::date", len(args))
		}
		if filter.EndDate != nil {
			args = append(args, *filter.EndDate)
			query += fmt.Sprintf(" AND t.date::date <= $%d::date", len(args))
		}
	}
	query += " ORDER BY t.date DESC, t.id DESC"

	rows, err := r.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// Recent returns the account's most recent transactions.
func (r *Reader) Recent(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]*Transaction, error) {
	rows, err := r.exec.QueryContext(ctx,
		selectJoined+` WHERE t.account_id = $1 AND a.user_id = $2
ORDER BY t.date DESC, t.id DESC
LIMIT $3`,
		accountID, userID, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// FindByIDAndUser retrieves a transaction whose account is owned by the
// user. Missing and foreign-owned both return nil without error.
func (r *Reader) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	row := r.exec.QueryRowContext(ctx,
		selectJoined+" WHERE t.id = $1 AND a.user_id = $2",
		id, userID)

	transaction, err := scanRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// Summary derives income, expense and balance for the account by
// summing amounts grouped by category type. An account with no
// transactions yields a zero summary, not an error.
func (r *Reader) Summary(ctx context.Context, accountID, userID uuid.UUID) (*Summary, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT c.type, COALESCE(SUM(t.amount), 0)
FROM transactions t
JOIN categories c ON t.category_id = c.id
JOIN accounts a ON t.account_id = a.id
WHERE t.account_id = $1 AND a.user_id = $2
GROUP BY c.type`,
		accountID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for rows.Next() {
		var categoryType category.Type
		var total decimal.Decimal
		if err := rows.Scan(&categoryType, &total); err != nil {
			return nil, err
		}
		switch categoryType {
		case category.TypeIncome:
			summary.Income = total
		case category.TypeExpense:
			summary.Expense = total
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summary.Balance = summary.Income.Sub(summary.Expense)
	return summary, nil
}

// StatisticsRows returns every transaction whose calendar date falls in
// [start, end] inclusive, oldest first, reduced for aggregation.
func (r *Reader) StatisticsRows(ctx context.Context, accountID, userID uuid.UUID, start, end time.Time) ([]*StatRow, error) {
	rows, err := r.exec.QueryContext(ctx,
		`SELECT t.amount, t.date::date, c.name, c.type
FROM transactions t
JOIN categories c ON t.category_id = c.id
JOIN accounts a ON t.account_id = a.id
WHERE t.account_id = $1 AND a.user_id = $2
  AND t.date::date BETWEEN $3::date AND $4::date
ORDER BY t.date ASC`,
		accountID, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*StatRow
	for rows.Next() {
		var row StatRow
		if err := rows.Scan(&row.Amount, &row.Day, &row.CategoryName, &row.CategoryType); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}

func collect(rows *sql.Rows) ([]*Transaction, error) {
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		transaction, err := scanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, transaction)
	}
	return result, rows.Err()
}

func scanRow(scan func(dest ...any) error) (*Transaction, error) {
	var transaction Transaction
	err := scan(
		&transaction.ID,
		&transaction.AccountID,
		&transaction.CategoryID,
		&transaction.Amount,
		&transaction.Date,
		&transaction.Description,
		&transaction.CategoryName,
		&transaction.CategoryType,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
