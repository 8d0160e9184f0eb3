package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Email     string `json:"email" required:"true" format:"email" doc:"Email address, unique per user"`
	FirstName string `json:"firstName" required:"true" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
	Password  string `json:"password" required:"true" minLength:"8" doc:"Plain password, stored as a bcrypt hash"`
}

// RegisterInput is the Huma input for registering a user.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registering a user.
type RegisterOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   struct {
		ID string `json:"id" doc:"New user UUID"`
	}
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(op *operator.OperatorDelegator) *RegisterHandler {
	return &RegisterHandler{Operator: op}
}

// Register registers the register endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register-user",
		Method:      http.MethodPost,
		Path:        "/v1/auth/register",
		Summary:     "Register user",
		Description: "Creates a user and seeds the default category set.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register user", err)
	}

	action := &actions.RegisterUser{
		Email:        input.Body.Email,
		FirstName:    input.Body.FirstName,
		LastName:     input.Body.LastName,
		PasswordHash: string(hash),
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to register user")
	}

	out := &RegisterOutput{Status: http.StatusCreated}
	out.Body.ID = action.UserID.String()
	return out, nil
}
