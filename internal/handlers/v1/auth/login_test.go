package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/walletty/wallet-server/internal/service"
)

// mockUserAuthenticator is a mock for userAuthenticator.
type mockUserAuthenticator struct {
	mock.Mock
}

func (m *mockUserAuthenticator) Login(ctx context.Context, email, password string) (*service.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func newLoginTestAPI(t *testing.T, svc userAuthenticator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(svc).Register(api)
	return api
}

func TestLogin_Success(t *testing.T) {
	svc := &mockUserAuthenticator{}
	api := newLoginTestAPI(t, svc)

	userID := uuid.Must(uuid.NewV4())
	svc.On("Login", mock.Anything, "olena@example.com", "hunter22").
		Return(&service.User{ID: userID, Email: "olena@example.com", FirstName: "Olena"}, nil)

	resp := api.Post("/v1/auth/login", map[string]any{
		"email":    "olena@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), userID.String())
	svc.AssertExpectations(t)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := &mockUserAuthenticator{}
	api := newLoginTestAPI(t, svc)

	svc.On("Login", mock.Anything, "olena@example.com", "wrong").
		Return(nil, service.ErrInvalidCredentials)

	resp := api.Post("/v1/auth/login", map[string]any{
		"email":    "olena@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
