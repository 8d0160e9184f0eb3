package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
)

// ErrDuplicate reports an insert that collided with the unique
// (user_id, name, type) constraint.
var ErrDuplicate = errors.New("category already exists")

type Writer struct {
	exec executor
	Reader
}

func NewWriter(exec executor) *Writer {
	return &Writer{
		exec:   exec,
		Reader: Reader{exec: exec},
	}
}

// Insert creates a new category and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *Create) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = w.exec.ExecContext(ctx,
		"INSERT INTO categories (id, user_id, name, type, description) VALUES ($1, $2, $3, $4, $5)",
		id, create.UserID, create.Name, create.Type, create.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrDuplicate
		}
		return uuid.Nil, err
	}
	return id, nil
}

// Update changes name, type and description of a category owned by the
// user. Returns false when no row matched.
func (w *Writer) Update(ctx context.Context, id, userID uuid.UUID, name string, categoryType Type, description string) (bool, error) {
	result, err := w.exec.ExecContext(ctx,
		"UPDATE categories SET name = $1, type = $2, description = $3 WHERE id = $4 AND user_id = $5",
		name, categoryType, description, id, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicate
		}
		return false, err
	}
	return affected(result.RowsAffected())
}

// DeleteUnreferenced deletes the category only while no transaction
// references it. The existence check and the delete are one statement,
// so a transaction inserted concurrently can never be orphaned.
func (w *Writer) DeleteUnreferenced(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result, err := w.exec.ExecContext(ctx,
		`DELETE FROM categories
		 WHERE id = $1 AND user_id = $2
		   AND NOT EXISTS (SELECT 1 FROM transactions WHERE category_id = categories.id)`,
		id, userID)
	if err != nil {
		return false, err
	}
	return affected(result.RowsAffected())
}

// GetOrCreateSystem resolves a system category, creating it on first
// use. Racing creators are collapsed by the unique (user_id, name,
// type) index: the upsert always returns the surviving row's id.
func (w *Writer) GetOrCreateSystem(ctx context.Context, userID uuid.UUID, name string, categoryType Type, description string) (uuid.UUID, error) {
	var id uuid.UUID
	err := w.exec.QueryRowContext(ctx,
		"SELECT id FROM categories WHERE user_id = $1 AND name = $2 AND type = $3",
		userID, name, categoryType).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}

	newID, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	err = w.exec.QueryRowContext(ctx,
		`INSERT INTO categories (id, user_id, name, type, description)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, name, type) DO UPDATE SET description = EXCLUDED.description
		 RETURNING id`,
		newID, userID, name, categoryType, description).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetOrCreateTransfer resolves the transfer category for one direction:
// expense is the outgoing side, income the incoming one.
func (w *Writer) GetOrCreateTransfer(ctx context.Context, userID uuid.UUID, categoryType Type) (uuid.UUID, error) {
	switch categoryType {
	case TypeExpense:
		return w.GetOrCreateSystem(ctx, userID, SystemTransferOut, TypeExpense,
			"Funds sent to another account.")
	case TypeIncome:
		return w.GetOrCreateSystem(ctx, userID, SystemTransferIn, TypeIncome,
			"Funds received from another account.")
	}
	return uuid.Nil, errors.New("invalid transfer category type")
}

// GetOrCreateInitialBalance resolves the income category that records
// an account's opening balance.
func (w *Writer) GetOrCreateInitialBalance(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	return w.GetOrCreateSystem(ctx, userID, SystemInitialBalance, TypeIncome,
		"Opening balance recorded when the account was created.")
}

// GetOrCreateAdjustment resolves the adjustment category for the given
// direction. One shared name, one row per type.
func (w *Writer) GetOrCreateAdjustment(ctx context.Context, userID uuid.UUID, categoryType Type) (uuid.UUID, error) {
	if !categoryType.Valid() {
		return uuid.Nil, errors.New("invalid adjustment category type")
	}
	return w.GetOrCreateSystem(ctx, userID, SystemAdjustment, categoryType,
		"Correcting entry applied to change the account balance.")
}

// InsertDefaults seeds the starter category set for a new user.
func (w *Writer) InsertDefaults(ctx context.Context, userID uuid.UUID) error {
	for _, d := range defaultCategories {
		_, err := w.Insert(ctx, &Create{
			UserID:      userID,
			Name:        d.name,
			Type:        d.categoryType,
			Description: d.description,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

var defaultCategories = []struct {
	name         string
	categoryType Type
	description  string
}{
	{"Groceries", TypeExpense, "Food shopping and other household essentials."},
	{"Transport", TypeExpense, "Public transport, taxis, fuel, car maintenance."},
	{"Housing", TypeExpense, "Rent or mortgage, utilities, repairs, furniture."},
	{"Clothing", TypeExpense, "Clothes, shoes and accessories."},
	{"Health", TypeExpense, "Medical services, medicine, insurance, sports."},
	{"Entertainment", TypeExpense, "Cinema, concerts, cafes, restaurants, hobbies, travel."},
	{"Education", TypeExpense, "Tuition, courses, books, learning materials."},
	{"Gifts", TypeExpense, "Presents for other people."},
	{"Communication", TypeExpense, "Mobile, internet and television bills."},
	{"Other expenses", TypeExpense, "Uncategorized spending."},
	{"Salary", TypeIncome, "Primary employment income."},
	{"Side income", TypeIncome, "Extra earnings and freelance work."},
	{"Gifts", TypeIncome, "Money received as a gift."},
	{"Interest", TypeIncome, "Deposit interest and cashback."},
	{"Other income", TypeIncome, "Uncategorized income."},
}

func affected(count int64, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
