package actions_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/walletty/wallet-server/internal/operator/actions"
	"github.com/walletty/wallet-server/internal/service"
)

func TestAdjustBalance_NegativeAmountBecomesExpense(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(accountColumnsSQL).
		WithArgs(accountID, userID).
		WillReturnRows(accountRow(accountID, userID, "Cash", "EUR"))
	expectSystemCategoryHit(mock, userID, "Balance adjustment", "expense", categoryID)
	mock.ExpectExec(exact(transferInsertSQL)).
		WithArgs(sqlmock.AnyArg(), accountID, categoryID, "12.5", sqlmock.AnyArg(),
			"Balance adjustment: lost receipt").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	action := &actions.AdjustBalance{
		UserID:    userID,
		AccountID: accountID,
		Amount:    decimal.RequireFromString("-12.5"),
		Note:      "lost receipt",
	}

	err := delegator.Process(context.Background(), action)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, action.TransactionID)
}

func TestAdjustBalance_PositiveAmountBecomesIncome(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(accountColumnsSQL).
		WithArgs(accountID, userID).
		WillReturnRows(accountRow(accountID, userID, "Cash", "EUR"))
	expectSystemCategoryHit(mock, userID, "Balance adjustment", "income", categoryID)
	mock.ExpectExec(exact(transferInsertSQL)).
		WithArgs(sqlmock.AnyArg(), accountID, categoryID, "40", sqlmock.AnyArg(),
			"Balance adjustment").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := delegator.Process(context.Background(), &actions.AdjustBalance{
		UserID:    userID,
		AccountID: accountID,
		Amount:    decimal.RequireFromString("40"),
	})
	assert.NoError(t, err)
}

func TestAdjustBalance_ZeroAmountRejected(t *testing.T) {
	delegator, mock := newMockOperator(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := delegator.Process(context.Background(), &actions.AdjustBalance{
		UserID:    uuid.Must(uuid.NewV4()),
		AccountID: uuid.Must(uuid.NewV4()),
		Amount:    decimal.Zero,
	})
	assert.True(t, service.IsValidation(err))
}
