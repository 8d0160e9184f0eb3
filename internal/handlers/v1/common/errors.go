package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/service"
)

// MapError translates service-layer failures into HTTP errors.
// Validation failures become 422 with the offending field; everything
// unexpected collapses into a generic 500 so storage detail never
// reaches the client.
func MapError(err error, fallback string) error {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return huma.NewError(http.StatusUnprocessableEntity, validation.Field+" "+validation.Message)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrCategoryInUse):
		return huma.NewError(http.StatusConflict, "category is referenced by transactions")
	case errors.Is(err, service.ErrEmailTaken):
		return huma.NewError(http.StatusConflict, "email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.NewError(http.StatusUnauthorized, "invalid email or password")
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}

// ParseDecimal parses a decimal input field, accepting a comma decimal
// separator ("12,50") alongside the dot form.
func ParseDecimal(field, s string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return value, nil
}
