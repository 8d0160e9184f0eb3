package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/walletty/wallet-server/internal/config"
)

// Storage owns the database handle. Reads go through Reader; every
// write happens inside a Writer obtained from Write, which wraps one
// database transaction.
type Storage struct {
	DB     *sql.DB
	Reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return NewStorageWithDB(db), nil
}

// NewStorageWithDB wraps an already-open handle. Tests use it to run
// the storage layer against a mocked database.
func NewStorageWithDB(db *sql.DB) *Storage {
	return &Storage{
		DB:     db,
		Reader: NewReader(db),
	}
}

// Write begins a storage transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
