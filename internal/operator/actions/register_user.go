package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
	"github.com/walletty/wallet-server/internal/storage/user"
)

// RegisterUser creates a user and seeds the default category set in
// the same transaction, so a new user never observes an empty category
// list.
type RegisterUser struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string

	// UserID is set after a successful Perform.
	UserID uuid.UUID
	IAction
}

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		return service.NewValidationError("email", "must not be empty")
	}

	userID, err := writer.Users.Insert(ctx, &user.Create{
		Email:        email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return service.ErrEmailTaken
		}
		return err
	}

	if err := writer.Categories.InsertDefaults(ctx, userID); err != nil {
		return err
	}

	r.UserID = userID
	return nil
}
