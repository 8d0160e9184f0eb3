package actions

import (
	"context"

	"github.com/walletty/wallet-server/internal/storage"
)

// IAction is one atomic mutation. Perform runs inside the writer's
// transaction; returning an error rolls the whole transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
