// Command igsession opens an authenticated session against the IG
// Markets REST gateway and prints the account list.
//
// Usage:
//
//	igsession --config config.yaml
//	igsession --demo=false
//
// Credentials come from the environment (or a .env file):
//
//	IG_IDENTIFIER, IG_PASSWORD, IG_API_KEY
//
// When they are missing, an interactive wizard collects them.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/vadiminshakov/igsession/config"
	"github.com/vadiminshakov/igsession/internal/session"
	"github.com/vadiminshakov/igsession/internal/setup"
	"github.com/vadiminshakov/igsession/internal/transport"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.Complete() {
		if err := setup.RunTUI(&cfg); err != nil {
			log.Fatal(err)
		}
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sess := session.New(session.Credentials{
		Demo:       cfg.Demo,
		Identifier: cfg.Identifier,
		Password:   cfg.Password,
		APIKey:     cfg.APIKey,
	}, transport.NewClient(cfg.Timeout), logger)
	defer sess.Close()

	ctx := context.Background()
	if err := sess.Login(ctx); err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}

	accounts, err := sess.Accounts(ctx)
	if err != nil {
		logger.Fatal("list accounts failed", zap.Error(err))
	}
	for _, a := range accounts {
		logger.Info("account",
			zap.String("id", a.AccountID),
			zap.String("name", a.AccountName),
			zap.String("type", a.AccountType),
			zap.String("currency", a.Currency),
			zap.String("balance", a.Balance.Balance.String()),
			zap.Bool("preferred", a.Preferred))
	}
}
