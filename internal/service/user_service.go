package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/walletty/wallet-server/internal/storage/user"
)

type userReader interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// UserService handles user lookups and credential checks.
type UserService struct {
	users userReader
}

// NewUserService creates a new UserService.
func NewUserService(users userReader) *UserService {
	return &UserService{users: users}
}

// Login verifies the email and password pair. Unknown emails and wrong
// passwords both come back as ErrInvalidCredentials so login failures
// reveal nothing about which emails exist.
func (s *UserService) Login(ctx context.Context, email, password string) (*User, error) {
	row, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userFromStorage(row), nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return userFromStorage(row), nil
}

func userFromStorage(row *user.User) *User {
	return &User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		CreatedAt: row.CreatedAt,
	}
}
