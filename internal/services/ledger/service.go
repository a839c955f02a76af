package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"walletsync/internal/models"
)

// Processor applies validated notification batches to wallet balances. It
// holds no state between invocations; every decision is derived from store
// reads made inside the batch's own transactional scope.
type Processor struct {
	store  Store
	logger *logrus.Logger
}

func NewProcessor(store Store, logger *logrus.Logger) *Processor {
	if store == nil {
		panic("store is required")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Processor{store: store, logger: logger}
}

// Process applies every candidate in order inside one atomic unit of work.
// It returns a result only if the whole batch applied cleanly; the first
// failure rolls back everything, including wallets created or credited
// earlier in the same batch.
func (p *Processor) Process(ctx context.Context, batch []Candidate) (*BatchResult, error) {
	if len(batch) == 0 {
		return nil, ErrNoTransactions
	}

	result := &BatchResult{}
	seen := make(map[string]struct{}, len(batch))

	err := p.store.Atomic(ctx, func(tx Tx) error {
		for _, cand := range batch {
			if err := p.apply(ctx, tx, cand); err != nil {
				p.logger.WithFields(logrus.Fields{
					"transaction_id": cand.ID,
					"user_id":        cand.UserID,
					"type":           cand.Type,
				}).WithError(err).Warn("batch aborted, rolling back")
				return err
			}
			result.Applied++
			if _, ok := seen[cand.UserID]; !ok {
				seen[cand.UserID] = struct{}{}
				result.Users = append(result.Users, cand.UserID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Processor) apply(ctx context.Context, tx Tx, cand Candidate) error {
	amount := cand.MinorUnits()

	// Resolve the wallet, creating it lazily for a previously-unseen user.
	wallet, err := tx.WalletByUserID(ctx, cand.UserID)
	if errors.Is(err, ErrWalletNotFound) {
		if cerr := tx.CreateWallet(ctx, cand.UserID); cerr != nil {
			return fmt.Errorf("create wallet for user %s: %w", cand.UserID, cerr)
		}
		wallet, err = tx.WalletByUserID(ctx, cand.UserID)
	}
	if err != nil && !errors.Is(err, ErrWalletNotFound) {
		return fmt.Errorf("resolve wallet for user %s: %w", cand.UserID, err)
	}

	// A replayed id means the batch or upstream retry logic is inconsistent:
	// hard stop, never a skip.
	exists, err := tx.TransactionExists(ctx, cand.ID)
	if err != nil {
		return fmt.Errorf("check transaction %s: %w", cand.ID, err)
	}
	if exists {
		return fmt.Errorf("transaction %s: %w", cand.ID, ErrDuplicateTransaction)
	}

	// Unreachable after the create-and-reread above, but checked anyway.
	if wallet == nil {
		return fmt.Errorf("user %s: %w", cand.UserID, ErrWalletNotFound)
	}

	switch cand.Type {
	case models.TransactionTypeDeposit:
		if err := tx.ApplyBalanceDelta(ctx, cand.UserID, amount); err != nil {
			return fmt.Errorf("credit wallet for user %s: %w", cand.UserID, err)
		}
	case models.TransactionTypeWithdraw, models.TransactionTypePayment:
		if wallet.Balance < amount {
			return fmt.Errorf("%s of %d for user %s: %w", cand.Type, amount, cand.UserID, ErrInsufficientBalance)
		}
		if err := tx.ApplyBalanceDelta(ctx, cand.UserID, -amount); err != nil {
			return fmt.Errorf("debit wallet for user %s: %w", cand.UserID, err)
		}
	default:
		return fmt.Errorf("type %q: %w", cand.Type, ErrUnsupportedType)
	}

	record := &models.Transaction{
		ID:          cand.ID,
		CreatedAt:   cand.CreatedAt,
		UpdatedAt:   cand.UpdatedAt,
		Description: cand.Description,
		Type:        cand.Type,
		TypeMethod:  cand.TypeMethod,
		State:       cand.State,
		UserID:      cand.UserID,
		UserName:    cand.UserName,
		Amount:      amount,
		Currency:    cand.Currency,
		DebitCredit: cand.DebitCredit,
	}
	if err := tx.CreateTransaction(ctx, record); err != nil {
		return fmt.Errorf("persist transaction %s: %w", cand.ID, err)
	}
	return nil
}
