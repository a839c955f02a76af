package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"walletsync/internal/models"
)

const defaultWalletTTL = 24 * time.Hour

// Service is a cache-aside layer for wallet reads. It is strictly best
// effort: a cache failure degrades to a database read and never fails the
// request, so callers treat a (nil, false) result as a plain miss.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultWalletTTL
	}
	return &Service{client: client, ttl: ttl}
}

func walletKey(userID string) string {
	return fmt.Sprintf("wallet:user:%s", userID)
}

// GetWallet returns the cached wallet and whether it was present.
func (s *Service) GetWallet(ctx context.Context, userID string) (*models.Wallet, bool) {
	data, err := s.client.Get(ctx, walletKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, false
	}
	return &wallet, true
}

// SetWallet stores the wallet under its user key for the configured TTL.
func (s *Service) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	return s.client.Set(ctx, walletKey(wallet.UserID), data, s.ttl).Err()
}

// InvalidateWallet drops the cached entry after a balance mutation commits.
func (s *Service) InvalidateWallet(ctx context.Context, userID string) error {
	err := s.client.Del(ctx, walletKey(userID)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (s *Service) Close() error {
	return s.client.Close()
}
