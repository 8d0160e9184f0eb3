package actions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"

	"github.com/walletty/wallet-server/internal/operator/actions"
	"github.com/walletty/wallet-server/internal/service"
)

func TestDeleteAccount_CascadesTransactionsFirst(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(accountColumnsSQL).
		WithArgs(accountID, userID).
		WillReturnRows(accountRow(accountID, userID, "Old cash", "EUR"))
	mock.ExpectExec("DELETE FROM transactions WHERE account_id =").
		WithArgs(accountID).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec("DELETE FROM accounts WHERE id =").
		WithArgs(accountID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := delegator.Process(context.Background(), &actions.DeleteAccount{
		UserID:    userID,
		AccountID: accountID,
	})
	assert.NoError(t, err)
}

func TestDeleteAccount_NotOwned(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(accountColumnsSQL).
		WithArgs(accountID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "currency", "created_at"}))
	mock.ExpectRollback()

	err := delegator.Process(context.Background(), &actions.DeleteAccount{
		UserID:    userID,
		AccountID: accountID,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteAccount_TransactionDeleteFailureRollsBack(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectQuery(accountColumnsSQL).
		WithArgs(accountID, userID).
		WillReturnRows(accountRow(accountID, userID, "Old cash", "EUR"))
	mock.ExpectExec("DELETE FROM transactions WHERE account_id =").
		WithArgs(accountID).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := delegator.Process(context.Background(), &actions.DeleteAccount{
		UserID:    userID,
		AccountID: accountID,
	})
	assert.Error(t, err)
}
