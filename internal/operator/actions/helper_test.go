package actions_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/storage"
)

const accountColumnsSQL = "SELECT id, user_id, name, currency, created_at FROM accounts WHERE id ="

// newMockOperator wires a single-worker operator over a mocked
// database so actions run through the same begin/perform/commit path
// as production.
func newMockOperator(t *testing.T) (*operator.OperatorDelegator, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	store := storage.NewStorageWithDB(db)
	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()

	t.Cleanup(func() {
		delegator.Stop()
		db.Close()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return delegator, mock
}

func accountRow(id, userID uuid.UUID, name, currencyCode string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "currency", "created_at"}).
		AddRow(id, userID, name, currencyCode, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

// exact matches the full query text instead of sqlmock's regexp
// interpretation.
func exact(q string) string {
	return regexp.QuoteMeta(q)
}

func uniqueViolation() error {
	return &pq.Error{Code: "23505"}
}
