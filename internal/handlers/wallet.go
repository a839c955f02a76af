package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"walletsync/internal/models"
	"walletsync/internal/repositories"
	"walletsync/internal/services/ledger"
	"walletsync/internal/utils/response"
)

// walletReadCache is the cache-aside surface for wallet lookups.
type walletReadCache interface {
	GetWallet(ctx context.Context, userID string) (*models.Wallet, bool)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
}

// WalletHandler serves the read-only wallet lookup endpoint.
type WalletHandler struct {
	wallets repositories.WalletRepository
	cache   walletReadCache
	logger  *logrus.Logger
}

func NewWalletHandler(wallets repositories.WalletRepository, cache walletReadCache, logger *logrus.Logger) *WalletHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WalletHandler{wallets: wallets, cache: cache, logger: logger}
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return response.BadRequest(c, "user_id is required")
	}

	if wallet, found := h.cache.GetWallet(c.Context(), userID); found {
		return response.Success(c, fiber.Map{"wallet": wallet})
	}

	wallet, err := h.wallets.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ledger.ErrWalletNotFound) {
			return response.NotFound(c, "Wallet not found.")
		}
		h.logger.WithField("user_id", userID).WithError(err).Error("wallet lookup failed")
		return response.InternalError(c, "Internal Server Error")
	}

	if err := h.cache.SetWallet(c.Context(), wallet); err != nil {
		h.logger.WithField("user_id", userID).WithError(err).Warn("wallet cache write failed")
	}

	return response.Success(c, fiber.Map{"wallet": wallet})
}
