package ledger

import (
	"context"

	"walletsync/internal/models"
)

// Store is the unit-of-work boundary the processor runs batches inside.
// Atomic executes fn in one transaction: if fn returns an error every
// mutation made through the Tx is rolled back.
type Store interface {
	Atomic(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the transactional view of the wallet and transaction stores. All
// reads observe mutations made earlier through the same Tx.
type Tx interface {
	// WalletByUserID returns the wallet row, locked for update where the
	// backend supports it, or ErrWalletNotFound.
	WalletByUserID(ctx context.Context, userID string) (*models.Wallet, error)
	CreateWallet(ctx context.Context, userID string) error
	ApplyBalanceDelta(ctx context.Context, userID string, delta int64) error
	TransactionExists(ctx context.Context, id string) (bool, error)
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
}
