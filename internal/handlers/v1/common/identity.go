// Package common holds helpers shared by the v1 handlers: caller
// identity parsing and the service-error to HTTP mapping.
package common

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// ParseUserID resolves the acting user from the X-User-ID header value
// injected by the identity layer in front of this service. A missing
// or malformed value is an authentication failure, not a validation
// one.
func ParseUserID(header string) (uuid.UUID, error) {
	if header == "" {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "missing X-User-ID header")
	}
	userID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "invalid X-User-ID header", err)
	}
	return userID, nil
}

// ParseID parses a UUID path or body field.
func ParseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}
