package repositories

import (
	"context"

	"gorm.io/gorm"

	"walletsync/internal/models"
	"walletsync/internal/services/ledger"
)

// LedgerStore adapts a gorm handle to the processor's unit-of-work contract.
// Atomic runs fn inside one database transaction; any error from fn rolls the
// whole thing back. Conflicting writes to the same wallet row are serialized
// by the FOR UPDATE lock taken at wallet resolution.
type LedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) Atomic(ctx context.Context, fn func(tx ledger.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&ledgerTx{
			wallets:      NewWalletRepository(gtx),
			transactions: NewTransactionRepository(gtx),
		})
	})
}

type ledgerTx struct {
	wallets      WalletRepository
	transactions TransactionRepository
}

func (t *ledgerTx) WalletByUserID(ctx context.Context, userID string) (*models.Wallet, error) {
	return t.wallets.GetByUserIDForUpdate(ctx, userID)
}

func (t *ledgerTx) CreateWallet(ctx context.Context, userID string) error {
	return t.wallets.Create(ctx, userID)
}

func (t *ledgerTx) ApplyBalanceDelta(ctx context.Context, userID string, delta int64) error {
	return t.wallets.ApplyBalanceDelta(ctx, userID, delta)
}

func (t *ledgerTx) TransactionExists(ctx context.Context, id string) (bool, error) {
	return t.transactions.Exists(ctx, id)
}

func (t *ledgerTx) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	return t.transactions.Create(ctx, txn)
}
