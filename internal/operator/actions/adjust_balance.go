package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
	"github.com/walletty/wallet-server/internal/storage/category"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

// AdjustBalance records a signed correction against an account. The
// sign picks the side: positive amounts become income, negative become
// expense, and the stored row always carries the absolute value.
type AdjustBalance struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Amount    decimal.Decimal
	Note      string

	// TransactionID is set after a successful Perform.
	TransactionID uuid.UUID
	IAction
}

func (a *AdjustBalance) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Amount.IsZero() {
		return service.NewValidationError("amount", "must not be zero")
	}

	row, err := writer.Accounts.FindByIDAndUser(ctx, a.AccountID, a.UserID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.ErrNotFound
	}

	categoryType := category.TypeIncome
	if a.Amount.IsNegative() {
		categoryType = category.TypeExpense
	}

	categoryID, err := writer.Categories.GetOrCreateAdjustment(ctx, a.UserID, categoryType)
	if err != nil {
		return err
	}

	description := "Balance adjustment"
	if a.Note != "" {
		description += ": " + a.Note
	}

	transactionID, err := writer.Transactions.Insert(ctx, &transaction.Create{
		AccountID:   a.AccountID,
		CategoryID:  categoryID,
		Amount:      a.Amount.Abs(),
		Date:        time.Now().UTC(),
		Description: description,
	})
	if err != nil {
		return err
	}

	a.TransactionID = transactionID
	return nil
}
