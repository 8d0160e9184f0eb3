package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/service"
)

// LoginBody is the request body for a login check.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Plain password"`
}

// LoginInput is the Huma input for a login check.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for a login check.
type LoginOutput struct {
	Body struct {
		ID        string `json:"id" doc:"User UUID"`
		Email     string `json:"email" doc:"Email address"`
		FirstName string `json:"firstName" doc:"First name"`
		LastName  string `json:"lastName" doc:"Last name"`
	}
}

// userAuthenticator is the interface for verifying credentials.
type userAuthenticator interface {
	Login(ctx context.Context, email, password string) (*service.User, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	UserService userAuthenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc userAuthenticator) *LoginHandler {
	return &LoginHandler{UserService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Login",
		Description: "Verifies an email and password pair.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := h.UserService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, common.MapError(err, "failed to login")
	}

	out := &LoginOutput{}
	out.Body.ID = user.ID.String()
	out.Body.Email = user.Email
	out.Body.FirstName = user.FirstName
	out.Body.LastName = user.LastName
	return out, nil
}
