package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"walletsync/internal/models"
)

// ErrTransactionNotFound is returned for lookups of unknown transaction ids.
var ErrTransactionNotFound = errors.New("transaction not found")

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository binds a repository to a database or transaction handle.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check transaction existence: %w", err)
	}
	return count > 0, nil
}

func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) ListByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) PurgeTestData(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Transaction{}).Error
	if err != nil {
		return fmt.Errorf("purge test transactions: %w", err)
	}
	return nil
}
