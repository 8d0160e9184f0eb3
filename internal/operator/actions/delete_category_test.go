package actions_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"

	"github.com/walletty/wallet-server/internal/operator/actions"
	"github.com/walletty/wallet-server/internal/service"
)

const guardedCategoryDeleteSQL = "DELETE FROM categories"

func TestDeleteCategory_Unreferenced(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectExec(guardedCategoryDeleteSQL).
		WithArgs(categoryID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := delegator.Process(context.Background(), &actions.DeleteCategory{
		UserID:     userID,
		CategoryID: categoryID,
	})
	assert.NoError(t, err)
}

func TestDeleteCategory_StillReferenced(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectExec(guardedCategoryDeleteSQL).
		WithArgs(categoryID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .* FROM categories WHERE id =").
		WithArgs(categoryID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "description", "created_at"}).
			AddRow(categoryID, userID, "Groceries", "expense", "", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	mock.ExpectRollback()

	err := delegator.Process(context.Background(), &actions.DeleteCategory{
		UserID:     userID,
		CategoryID: categoryID,
	})
	assert.ErrorIs(t, err, service.ErrCategoryInUse)
}

func TestDeleteCategory_Missing(t *testing.T) {
	delegator, mock := newMockOperator(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mock.ExpectBegin()
	mock.ExpectExec(guardedCategoryDeleteSQL).
		WithArgs(categoryID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .* FROM categories WHERE id =").
		WithArgs(categoryID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "description", "created_at"}))
	mock.ExpectRollback()

	err := delegator.Process(context.Background(), &actions.DeleteCategory{
		UserID:     userID,
		CategoryID: categoryID,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}
