package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/walletty/wallet-server/internal/storage/user"
)

// mockUserReader is a mock for userReader.
type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserReader) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func makeStorageUser(t *testing.T, email, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        email,
		FirstName:    "Olena",
		LastName:     "K",
		PasswordHash: string(hash),
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLogin_Success(t *testing.T) {
	users := &mockUserReader{}
	svc := NewUserService(users)
	row := makeStorageUser(t, "olena@example.com", "hunter22")

	users.On("FindByEmail", mock.Anything, "olena@example.com").Return(row, nil)

	result, err := svc.Login(context.Background(), "olena@example.com", "hunter22")
	assert.NoError(t, err)
	assert.Equal(t, row.ID, result.ID)
	assert.Equal(t, "olena@example.com", result.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &mockUserReader{}
	svc := NewUserService(users)
	row := makeStorageUser(t, "olena@example.com", "hunter22")

	users.On("FindByEmail", mock.Anything, "olena@example.com").Return(row, nil)

	result, err := svc.Login(context.Background(), "olena@example.com", "wrong")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := &mockUserReader{}
	svc := NewUserService(users)

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	result, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
