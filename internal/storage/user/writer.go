package user

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
)

// ErrEmailExists reports an insert that collided with the unique email
// constraint.
var ErrEmailExists = errors.New("email already registered")

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

// Insert creates a new user and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *Create) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = w.exec.ExecContext(ctx,
		"INSERT INTO users (id, email, first_name, last_name, password_hash) VALUES ($1, $2, $3, $4, $5)",
		id, create.Email, create.FirstName, create.LastName, create.PasswordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return uuid.Nil, ErrEmailExists
		}
		return uuid.Nil, err
	}
	return id, nil
}
