package ledger

import (
	"context"
	"sync"
	"time"

	"walletsync/internal/models"
)

// MemoryStore is a concurrency-safe in-memory Store. Atomic snapshots both
// maps up front and restores them when fn fails, mirroring the rollback
// behavior of the SQL-backed store. Useful for unit tests.
type MemoryStore struct {
	mu           sync.Mutex
	wallets      map[string]*models.Wallet
	transactions map[string]*models.Transaction
	nextID       uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		wallets:      make(map[string]*models.Wallet),
		transactions: make(map[string]*models.Transaction),
	}
}

// SeedWallet installs a wallet with the given balance, bypassing the
// transactional path.
func (s *MemoryStore) SeedWallet(userID string, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now()
	s.wallets[userID] = &models.Wallet{
		ID:        s.nextID,
		UserID:    userID,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Wallet returns a copy of the stored wallet, or nil when absent.
func (s *MemoryStore) Wallet(userID string) *models.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[userID]
	if !ok {
		return nil
	}
	cp := *w
	return &cp
}

// Transaction returns a copy of the stored transaction, or nil when absent.
func (s *MemoryStore) Transaction(id string) *models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil
	}
	cp := *t
	return &cp
}

// TransactionsByUser returns copies of every stored transaction for a user.
func (s *MemoryStore) TransactionsByUser(userID string) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out
}

func (s *MemoryStore) Atomic(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	walletSnap := make(map[string]*models.Wallet, len(s.wallets))
	for k, v := range s.wallets {
		cp := *v
		walletSnap[k] = &cp
	}
	txnSnap := make(map[string]*models.Transaction, len(s.transactions))
	for k, v := range s.transactions {
		cp := *v
		txnSnap[k] = &cp
	}
	idSnap := s.nextID

	if err := fn(&memoryTx{store: s}); err != nil {
		s.wallets = walletSnap
		s.transactions = txnSnap
		s.nextID = idSnap
		return err
	}
	return nil
}

// memoryTx mutates the store directly; the caller already holds the lock and
// Atomic restores the snapshot on failure.
type memoryTx struct {
	store *MemoryStore
}

func (t *memoryTx) WalletByUserID(_ context.Context, userID string) (*models.Wallet, error) {
	w, ok := t.store.wallets[userID]
	if !ok {
		return nil, ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

func (t *memoryTx) CreateWallet(_ context.Context, userID string) error {
	t.store.nextID++
	now := time.Now()
	t.store.wallets[userID] = &models.Wallet{
		ID:        t.store.nextID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return nil
}

func (t *memoryTx) ApplyBalanceDelta(_ context.Context, userID string, delta int64) error {
	w, ok := t.store.wallets[userID]
	if !ok {
		return ErrWalletNotFound
	}
	w.Balance += delta
	w.UpdatedAt = time.Now()
	return nil
}

func (t *memoryTx) TransactionExists(_ context.Context, id string) (bool, error) {
	_, ok := t.store.transactions[id]
	return ok, nil
}

func (t *memoryTx) CreateTransaction(_ context.Context, txn *models.Transaction) error {
	cp := *txn
	t.store.transactions[txn.ID] = &cp
	return nil
}
