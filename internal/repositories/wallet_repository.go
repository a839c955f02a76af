package repositories

import (
	"context"

	"walletsync/internal/models"
)

// WalletRepository is the read/write surface for wallet rows. Lookups for
// absent users return ledger.ErrWalletNotFound.
type WalletRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Wallet, error)
	// GetByUserIDForUpdate acquires a row-level lock; only meaningful when
	// the repository is bound to a transaction handle.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*models.Wallet, error)
	Create(ctx context.Context, userID string) error
	// ApplyBalanceDelta adds delta (which may be negative) to the stored
	// balance in a single UPDATE.
	ApplyBalanceDelta(ctx context.Context, userID string, delta int64) error
}
