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

func TestCreateAccount_WithInitialBalance(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), userID, "Cash", "UAH").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectSystemCategoryHit(mock, userID, "Initial balance", "income", categoryID)
	mock.ExpectExec(exact(transferInsertSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), categoryID, "1500", sqlmock.AnyArg(),
			"Initial balance").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	action := &actions.CreateAccount{
		UserID:         userID,
		Name:           " Cash ",
		Currency:       "UAH",
		InitialBalance: decimal.RequireFromString("1500"),
	}

	err := delegator.Process(context.Background(), action)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, action.AccountID)
}

func TestCreateAccount_WithoutInitialBalance(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), userID, "Cash", "EUR").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := delegator.Process(context.Background(), &actions.CreateAccount{
		UserID:   userID,
		Name:     "Cash",
		Currency: "EUR",
	})
	assert.NoError(t, err)
}

func TestCreateAccount_DisallowedCurrency(t *testing.T) {
	delegator, mock := newMockOperator(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := delegator.Process(context.Background(), &actions.CreateAccount{
		UserID:   uuid.Must(uuid.NewV4()),
		Name:     "Cash",
		Currency: "XBT",
	})
	assert.True(t, service.IsValidation(err))
}
