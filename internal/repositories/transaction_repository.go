package repositories

import (
	"context"

	"walletsync/internal/models"
)

// TransactionRepository is the access surface for settled-event records.
// Records are insert-only in steady state; PurgeTestData exists solely as the
// operational escape hatch for cleaning up seeded test users.
type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, txn *models.Transaction) error
	ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
	PurgeTestData(ctx context.Context, userID string) error
}
