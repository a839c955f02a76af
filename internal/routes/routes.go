package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"walletsync/internal/handlers"
	"walletsync/internal/middleware"
	"walletsync/internal/services/signature"
)

// Deps bundles everything route registration needs.
type Deps struct {
	DB       *gorm.DB
	Verifier *signature.Verifier

	Webhook      *handlers.WebhookHandler
	Wallet       *handlers.WalletHandler
	Transactions *handlers.TransactionHandler
}

// SetupRoutes registers every endpoint on the app.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Get("/health", handlers.HealthCheck(deps.DB))

	api := app.Group("/api")
	api.Post("/webhook",
		middleware.SignatureVerification(deps.Verifier),
		deps.Webhook.HandleNotification,
	)
	api.Get("/wallets/:user_id", deps.Wallet.GetWallet)
	api.Get("/transactions/:user_id", deps.Transactions.GetTransactions)
}
