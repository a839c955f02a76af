package ledger

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(store Store) *Processor {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewProcessor(store, logger)
}

func candidate(id, txType, userID string, amount float64) Candidate {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return Candidate{
		ID:          id,
		CreatedAt:   now,
		UpdatedAt:   now,
		Description: "test event",
		Type:        txType,
		TypeMethod:  "bank",
		State:       "successful",
		UserID:      userID,
		UserName:    "Test User",
		Amount:      amount,
		Currency:    "AUD",
		DebitCredit: "credit",
	}
}

func TestProcessDepositCreatesWallet(t *testing.T) {
	store := NewMemoryStore()
	p := newTestProcessor(store)

	result, err := p.Process(context.Background(), []Candidate{
		candidate("t1", "deposit", "u1", 100.00),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, []string{"u1"}, result.Users)

	wallet := store.Wallet("u1")
	require.NotNil(t, wallet)
	assert.Equal(t, int64(10000), wallet.Balance)

	stored := store.Transaction("t1")
	require.NotNil(t, stored)
	assert.Equal(t, int64(10000), stored.Amount)
	assert.Equal(t, "u1", stored.UserID)
}

func TestProcessWithdraw(t *testing.T) {
	tests := []struct {
		name        string
		balance     int64
		txType      string
		amount      float64
		wantErr     error
		wantBalance int64
	}{
		{
			name:        "sufficient funds",
			balance:     10000,
			txType:      "withdraw",
			amount:      50.00,
			wantBalance: 5000,
		},
		{
			name:        "payment debits identically",
			balance:     10000,
			txType:      "payment",
			amount:      50.00,
			wantBalance: 5000,
		},
		{
			name:        "insufficient funds",
			balance:     4000,
			txType:      "withdraw",
			amount:      50.00,
			wantErr:     ErrInsufficientBalance,
			wantBalance: 4000,
		},
		{
			name:        "balance exactly equal",
			balance:     5000,
			txType:      "withdraw",
			amount:      50.00,
			wantBalance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			store.SeedWallet("u1", tt.balance)
			p := newTestProcessor(store)

			_, err := p.Process(context.Background(), []Candidate{
				candidate("t2", tt.txType, "u1", tt.amount),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, store.Transaction("t2"))
			} else {
				assert.NoError(t, err)
				require.NotNil(t, store.Transaction("t2"))
			}
			assert.Equal(t, tt.wantBalance, store.Wallet("u1").Balance)
		})
	}
}

func TestProcessDuplicateTransaction(t *testing.T) {
	store := NewMemoryStore()
	p := newTestProcessor(store)
	ctx := context.Background()

	_, err := p.Process(ctx, []Candidate{candidate("t1", "deposit", "u1", 100.00)})
	require.NoError(t, err)

	// Replaying the same id must fail hard and leave the balance untouched.
	_, err = p.Process(ctx, []Candidate{candidate("t1", "deposit", "u1", 100.00)})
	assert.ErrorIs(t, err, ErrDuplicateTransaction)
	assert.Equal(t, int64(10000), store.Wallet("u1").Balance)
}

func TestProcessDuplicateWithinBatch(t *testing.T) {
	store := NewMemoryStore()
	p := newTestProcessor(store)

	_, err := p.Process(context.Background(), []Candidate{
		candidate("t1", "deposit", "u1", 100.00),
		candidate("t1", "deposit", "u1", 100.00),
	})
	assert.ErrorIs(t, err, ErrDuplicateTransaction)
	assert.Nil(t, store.Wallet("u1"))
	assert.Nil(t, store.Transaction("t1"))
}

func TestProcessUnsupportedType(t *testing.T) {
	store := NewMemoryStore()
	p := newTestProcessor(store)

	_, err := p.Process(context.Background(), []Candidate{
		candidate("t1", "transfer", "u1", 100.00),
	})
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Nil(t, store.Transaction("t1"))
}

func TestProcessEmptyBatch(t *testing.T) {
	p := newTestProcessor(NewMemoryStore())
	_, err := p.Process(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoTransactions)
}

func TestProcessBatchRollsBackEarlierEvents(t *testing.T) {
	store := NewMemoryStore()
	store.SeedWallet("u2", 1000)
	p := newTestProcessor(store)

	// The third event fails on funds; the first two must leave no trace.
	_, err := p.Process(context.Background(), []Candidate{
		candidate("t1", "deposit", "u1", 100.00),
		candidate("t2", "deposit", "u2", 25.00),
		candidate("t3", "withdraw", "u2", 500.00),
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	assert.Nil(t, store.Wallet("u1"), "wallet created mid-batch must be rolled back")
	assert.Equal(t, int64(1000), store.Wallet("u2").Balance)
	assert.Nil(t, store.Transaction("t1"))
	assert.Nil(t, store.Transaction("t2"))
	assert.Nil(t, store.Transaction("t3"))
}

func TestProcessBatchSeesEarlierMutations(t *testing.T) {
	store := NewMemoryStore()
	p := newTestProcessor(store)

	// Withdrawal is funded by the deposit earlier in the same batch.
	result, err := p.Process(context.Background(), []Candidate{
		candidate("t1", "deposit", "u1", 100.00),
		candidate("t2", "withdraw", "u1", 60.00),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, []string{"u1"}, result.Users)
	assert.Equal(t, int64(4000), store.Wallet("u1").Balance)
}

func TestMinorUnitsRounding(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{100.00, 10000},
		{50.00, 5000},
		{0.01, 1},
		{10.994, 1099},
		{10.996, 1100},
		// Exact halves round to even; upstream leaves the mode unspecified.
		{0.125, 12},
		{0.135, 14},
	}

	for _, tt := range tests {
		got := Candidate{Amount: tt.amount}.MinorUnits()
		assert.Equal(t, tt.want, got, "amount %v", tt.amount)
	}
}
