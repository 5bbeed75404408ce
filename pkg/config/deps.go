package config

import (
	"log/slog"

	"github.com/bankcore/ledger/pkg/eventbus"
	"github.com/bankcore/ledger/pkg/lock"
	"github.com/bankcore/ledger/pkg/repository"
)

// Deps holds the infrastructure dependencies for building the services.
type Deps struct {
	Customers    repository.CustomerRepository
	Accounts     repository.AccountRepository
	Transactions repository.TransactionRepository
	Locks        *lock.Registry
	Bus          eventbus.Bus
	Logger       *slog.Logger
	Config       *App
}
