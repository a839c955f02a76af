// Package main provisions the database schema. With -purge-user it also
// deletes that user's transactions, the operational escape hatch for
// cleaning up seeded test data.
package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"walletsync/internal/config"
	"walletsync/internal/repositories"
)

func main() {
	purgeUser := flag.String("purge-user", "", "delete all transactions for this user id after migrating")
	flag.Parse()

	cfg := config.Load()
	logger := logrus.New()

	db, err := repositories.InitDB(cfg)
	if err != nil {
		logger.WithError(err).Fatal("database init failed")
	}
	defer func() { _ = repositories.CloseDB(db) }()

	logger.Info("schema migrated")

	if *purgeUser != "" {
		transactionRepo := repositories.NewTransactionRepository(db)
		if err := transactionRepo.PurgeTestData(context.Background(), *purgeUser); err != nil {
			logger.WithError(err).Fatal("purge failed")
		}
		logger.WithField("user_id", *purgeUser).Info("test transactions purged")
	}
}
