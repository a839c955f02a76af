package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"walletsync/internal/services/ledger"
	"walletsync/internal/utils/response"
	"walletsync/internal/validation"
)

// walletCache is the slice of the cache service the webhook handler needs.
type walletCache interface {
	InvalidateWallet(ctx context.Context, userID string) error
}

// WebhookHandler receives signed provider notifications and drives the
// ledger processor. Signature verification has already happened in
// middleware by the time HandleNotification runs.
type WebhookHandler struct {
	processor *ledger.Processor
	cache     walletCache
	logger    *logrus.Logger
}

func NewWebhookHandler(processor *ledger.Processor, cache walletCache, logger *logrus.Logger) *WebhookHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WebhookHandler{processor: processor, cache: cache, logger: logger}
}

func (h *WebhookHandler) HandleNotification(c *fiber.Ctx) error {
	candidates, err := validation.ParseNotification(c.Body())
	if err != nil {
		var vErr *validation.ValidationError
		if errors.As(err, &vErr) {
			return response.BadRequest(c, vErr.Error())
		}
		return response.BadRequest(c, "invalid payload")
	}

	result, err := h.processor.Process(c.Context(), candidates)
	if err != nil {
		return h.processError(c, err)
	}

	// Balance mutations are committed; drop stale cached wallets. Cache
	// failures only cost freshness, never the acknowledgment.
	for _, userID := range result.Users {
		if err := h.cache.InvalidateWallet(c.Context(), userID); err != nil {
			h.logger.WithField("user_id", userID).WithError(err).Warn("wallet cache invalidation failed")
		}
	}

	return response.Success(c, fiber.Map{
		"status":  "success",
		"applied": result.Applied,
	})
}

// processError translates the processor's typed failures to HTTP statuses.
// The processor itself never assigns codes.
func (h *WebhookHandler) processError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrNoTransactions):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, ledger.ErrDuplicateTransaction):
		return response.Conflict(c, err.Error())
	case errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrUnsupportedType):
		return response.UnprocessableEntity(c, err.Error())
	default:
		h.logger.WithError(err).Error("webhook batch failed")
		return response.InternalError(c, "Internal Server Error")
	}
}
