package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"walletsync/internal/repositories"
	"walletsync/internal/utils/response"
)

// TransactionHandler serves the read-only transaction history endpoint.
type TransactionHandler struct {
	transactions repositories.TransactionRepository
	logger       *logrus.Logger
}

func NewTransactionHandler(transactions repositories.TransactionRepository, logger *logrus.Logger) *TransactionHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TransactionHandler{transactions: transactions, logger: logger}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if userID == "" {
		return response.BadRequest(c, "user_id is required")
	}

	txns, err := h.transactions.ListByUserID(c.Context(), userID)
	if err != nil {
		h.logger.WithField("user_id", userID).WithError(err).Error("transaction list failed")
		return response.InternalError(c, "Internal Server Error")
	}

	return response.Success(c, fiber.Map{"transactions": txns})
}
