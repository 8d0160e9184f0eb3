package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
	"github.com/walletty/wallet-server/internal/storage/category"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

// Transfer moves funds between two of the user's accounts as one
// atomic unit: an expense row on the source in the system "Transfer
// out" category and an income row on the destination in "Transfer in".
// When the account currencies differ the destination amount is
// Amount multiplied by ExchangeRate; matching currencies force the
// rate to exactly 1 whatever the caller supplied. Either both rows
// land or neither does.
type Transfer struct {
	UserID        uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	ExchangeRate  *decimal.Decimal
	Note          string

	// DebitID and CreditID are set after a successful Perform.
	DebitID  uuid.UUID
	CreditID uuid.UUID
	IAction
}

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.FromAccountID == t.ToAccountID {
		return service.NewValidationError("to_account_id", "must differ from the source account")
	}
	if !t.Amount.IsPositive() {
		return service.NewValidationError("amount", "must be greater than zero")
	}

	from, err := writer.Accounts.FindByIDAndUser(ctx, t.FromAccountID, t.UserID)
	if err != nil {
		return err
	}
	if from == nil {
		return service.ErrNotFound
	}

	to, err := writer.Accounts.FindByIDAndUser(ctx, t.ToAccountID, t.UserID)
	if err != nil {
		return err
	}
	if to == nil {
		return service.ErrNotFound
	}

	crossCurrency := from.Currency != to.Currency
	rate := decimal.NewFromInt(1)
	if crossCurrency {
		if t.ExchangeRate == nil || !t.ExchangeRate.IsPositive() {
			return service.NewValidationError("exchange_rate", "must be greater than zero for cross-currency transfers")
		}
		rate = *t.ExchangeRate
	}

	// Both legs share one timestamp so they sort together.
	now := time.Now().UTC()

	debitDescription := fmt.Sprintf("Transfer to '%s'", to.Name)
	if crossCurrency {
		debitDescription += fmt.Sprintf(" (rate %s)", rate.String())
	}
	if t.Note != "" {
		debitDescription += ". Note: " + t.Note
	}

	outCategoryID, err := writer.Categories.GetOrCreateTransfer(ctx, t.UserID, category.TypeExpense)
	if err != nil {
		return err
	}
	debitID, err := writer.Transactions.Insert(ctx, &transaction.Create{
		AccountID:   t.FromAccountID,
		CategoryID:  outCategoryID,
		Amount:      t.Amount,
		Date:        now,
		Description: debitDescription,
	})
	if err != nil {
		return err
	}

	creditDescription := fmt.Sprintf("Transfer from '%s'", from.Name)
	if crossCurrency {
		creditDescription += fmt.Sprintf(" (rate %s)", rate.String())
	}
	if t.Note != "" {
		creditDescription += ". Note: " + t.Note
	}

	inCategoryID, err := writer.Categories.GetOrCreateTransfer(ctx, t.UserID, category.TypeIncome)
	if err != nil {
		return err
	}
	creditID, err := writer.Transactions.Insert(ctx, &transaction.Create{
		AccountID:   t.ToAccountID,
		CategoryID:  inCategoryID,
		Amount:      t.Amount.Mul(rate),
		Date:        now,
		Description: creditDescription,
	})
	if err != nil {
		return err
	}

	t.DebitID = debitID
	t.CreditID = creditID
	return nil
}
