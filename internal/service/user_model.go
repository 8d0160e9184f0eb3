package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a registered user in the service layer. The
// password hash never leaves this layer.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}
