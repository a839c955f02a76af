package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"walletsync/internal/models"
	"walletsync/internal/services/ledger"
)

type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository binds a repository to a database or transaction handle.
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetByUserID(ctx context.Context, userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrWalletNotFound
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrWalletNotFound
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) Create(ctx context.Context, userID string) error {
	wallet := models.Wallet{UserID: userID, Balance: 0}
	if err := r.db.WithContext(ctx).Create(&wallet).Error; err != nil {
		return fmt.Errorf("create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) ApplyBalanceDelta(ctx context.Context, userID string, delta int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("apply balance delta: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.ErrWalletNotFound
	}
	return nil
}
