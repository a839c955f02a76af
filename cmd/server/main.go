// Package main is the entry point for the walletsync service. It loads
// configuration, connects Postgres and redis, wires the ledger processor
// behind the webhook route and starts the HTTP server.
package main

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"walletsync/internal/config"
	"walletsync/internal/handlers"
	"walletsync/internal/middleware"
	"walletsync/internal/repositories"
	"walletsync/internal/repositories/cache"
	"walletsync/internal/routes"
	"walletsync/internal/services/ledger"
	"walletsync/internal/services/signature"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	logger.SetFormatter(&logrus.JSONFormatter{})

	// An empty secret must fail startup, never silently accept everything.
	verifier, err := signature.NewVerifier(cfg.HMACSecret)
	if err != nil {
		logger.WithError(err).Fatal("signature verifier init failed, set HMAC_SECRET")
	}

	db, err := repositories.InitDB(cfg)
	if err != nil {
		logger.WithError(err).Fatal("database init failed")
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			logger.WithError(err).Warn("closing database failed")
		}
	}()

	redisClient := cache.NewRedisClient(cfg)
	cacheService := cache.NewService(redisClient, 0)
	defer func() {
		if err := cacheService.Close(); err != nil {
			logger.WithError(err).Warn("closing redis failed")
		}
	}()

	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	processor := ledger.NewProcessor(repositories.NewLedgerStore(db), logger)

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Deps{
		DB:           db,
		Verifier:     verifier,
		Webhook:      handlers.NewWebhookHandler(processor, cacheService, logger),
		Wallet:       handlers.NewWalletHandler(walletRepo, cacheService, logger),
		Transactions: handlers.NewTransactionHandler(transactionRepo, logger),
	})

	logger.WithField("port", cfg.AppPort).Info("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
