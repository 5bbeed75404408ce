// Package app wires the in-memory infrastructure into the dependency
// container the services and delivery layers are built from.
package app

import (
	"context"
	"log/slog"
	"os"

	infraeventbus "github.com/bankcore/ledger/infra/eventbus"
	accountrepo "github.com/bankcore/ledger/infra/repository/account"
	customerrepo "github.com/bankcore/ledger/infra/repository/customer"
	transactionrepo "github.com/bankcore/ledger/infra/repository/transaction"
	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/bankcore/ledger/pkg/eventbus"
	"github.com/bankcore/ledger/pkg/lock"
)

// NewDeps assembles a fresh set of in-memory dependencies. Every call
// returns an independent ledger.
func NewDeps(cfg *config.App, logger *slog.Logger) config.Deps {
	bus := infraeventbus.NewWithMemory(logger)
	deps := config.Deps{
		Customers:    customerrepo.New(),
		Accounts:     accountrepo.New(),
		Transactions: transactionrepo.New(),
		Locks:        lock.NewRegistry(),
		Bus:          bus,
		Logger:       logger,
		Config:       cfg,
	}
	registerAuditSubscribers(bus, logger)
	return deps
}

// registerAuditSubscribers logs every published domain event. Logging is a
// collaborator concern; the ledger core itself never logs from inside its
// critical sections.
func registerAuditSubscribers(bus eventbus.Bus, logger *slog.Logger) {
	audit := logger.With("subscriber", "audit")
	bus.Register(account.EventTypeAccountCreated, func(ctx context.Context, e eventbus.Event) {
		if ev, ok := e.(account.CreatedEvent); ok {
			audit.Info("account created",
				"account_id", ev.Account.ID,
				"number", ev.Account.Number,
				"customer_id", ev.Account.CustomerID)
		}
	})
	bus.Register(account.EventTypeTransactionCreated, func(ctx context.Context, e eventbus.Event) {
		if ev, ok := e.(account.TransactionCreatedEvent); ok {
			audit.Info("transaction recorded",
				"transaction_id", ev.Transaction.ID,
				"account_id", ev.Transaction.AccountID,
				"kind", ev.Transaction.Kind,
				"amount", ev.Transaction.Amount)
		}
	})
}

// SetupLogger builds the process logger from configuration.
func SetupLogger(cfg *config.Log) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
