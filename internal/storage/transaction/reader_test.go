package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func newMockReader(t *testing.T) (*Reader, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return NewReader(db), mock
}

func TestSummary_GroupsByCategoryType(t *testing.T) {
	reader, mock := newMockReader(t)

	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	mock.ExpectQuery("GROUP BY c.type").
		WithArgs(accountID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"type", "sum"}).
			AddRow("income", "300.00").
			AddRow("expense", "100.00"))

	summary, err := reader.Summary(context.Background(), accountID, userID)
	assert.NoError(t, err)
	assert.Equal(t, "300", summary.Income.String())
	assert.Equal(t, "100", summary.Expense.String())
	assert.Equal(t, "200", summary.Balance.String())
}

func TestSummary_EmptyAccountIsZero(t *testing.T) {
	reader, mock := newMockReader(t)

	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	mock.ExpectQuery("GROUP BY c.type").
		WithArgs(accountID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"type", "sum"}))

	summary, err := reader.Summary(context.Background(), accountID, userID)
	assert.NoError(t, err)
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func transactionColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "account_id", "category_id", "amount", "date", "description", "name", "type",
	})
}

func TestListByAccount_NoFilter(t *testing.T) {
	reader, mock := newMockReader(t)

	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mock.ExpectQuery("ORDER BY t.date DESC, t.id DESC").
		WithArgs(accountID, userID).
		WillReturnRows(transactionColumns().
			AddRow(txID, accountID, categoryID, "42.00",
				time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), "coffee", "Groceries", "expense"))

	result, err := reader.ListByAccount(context.Background(), accountID, userID, nil)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, txID, result[0].ID)
	assert.Equal(t, "Groceries", result[0].CategoryName)
}

func TestListByAccount_FullFilterBindsAllArgs(t *testing.T) {
	reader, mock := newMockReader(t)

	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`AND t.category_id = \$3 AND t.date::date >= \$4::date AND t.date::date <= \$5::date`).
		WithArgs(accountID, userID, categoryID, start, end).
		WillReturnRows(transactionColumns())

	result, err := reader.ListByAccount(context.Background(), accountID, userID, &Filter{
		CategoryID: &categoryID,
		StartDate:  &start,
		EndDate:    &end,
	})
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestStatisticsRows_ScansReducedColumns(t *testing.T) {
	reader, mock := newMockReader(t)

	accountID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY t.date ASC").
		WithArgs(accountID, userID, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"amount", "date", "name", "type"}).
			AddRow("100.00", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), "Groceries", "expense").
			AddRow("300.00", time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), "Salary", "income"))

	rows, err := reader.StatisticsRows(context.Background(), accountID, userID, start, end)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Groceries", rows[0].CategoryName)
	assert.Equal(t, "300", rows[1].Amount.String())
}
