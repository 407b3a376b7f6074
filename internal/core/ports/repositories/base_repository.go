package repositories

import (
	"context"
)

// StoreHealth reports whether the backing ledger store is reachable.
type StoreHealth interface {
	// Ping returns apperrors.ErrStoreUnavailable when the store cannot be reached.
	Ping(ctx context.Context) error
}
