// Package account provides the application service for opening and querying
// accounts. Balance mutations are the transaction service's job; this
// service never changes a balance.
package account

import (
	"context"
	"log/slog"

	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/bankcore/ledger/pkg/domain/customer"
	"github.com/bankcore/ledger/pkg/domain/money"
	"github.com/bankcore/ledger/pkg/eventbus"
	"github.com/bankcore/ledger/pkg/lock"
	"github.com/bankcore/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Service opens accounts for customers and answers account queries.
type Service struct {
	accounts repository.AccountRepository
	locks    *lock.Registry
	bus      eventbus.Bus
	logger   *slog.Logger
}

// NewService creates a Service from the dependency container.
func NewService(deps config.Deps) *Service {
	return &Service{
		accounts: deps.Accounts,
		locks:    deps.Locks,
		bus:      deps.Bus,
		logger:   deps.Logger.With("service", "account"),
	}
}

// CreateAccount opens a zero-balance account for the customer. The account
// number is consumed before Create; a failing Create leaves a permanent gap
// in the number sequence rather than risking reuse.
func (s *Service) CreateAccount(ctx context.Context, c *customer.Customer) (*account.Account, error) {
	number := s.accounts.NextAccountNumber()
	a, err := account.New().
		WithCustomerID(c.ID).
		WithNumber(number).
		Build()
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Create(a); err != nil {
		s.logger.Error("account creation failed", "customer_id", c.ID, "error", err)
		return nil, err
	}
	s.logger.Info("account created", "account_id", a.ID, "number", a.Number, "customer_id", c.ID)
	_ = s.bus.Emit(ctx, account.CreatedEvent{Account: a})
	return a, nil
}

// Get returns the account with the given id.
func (s *Service) Get(accountID uuid.UUID) (*account.Account, error) {
	return s.accounts.Get(accountID)
}

// ListByCustomer returns the customer's accounts in creation order. A
// customer with no accounts yields an empty slice.
func (s *Service) ListByCustomer(customerID uuid.UUID) []*account.Account {
	return s.accounts.ListByCustomer(customerID)
}

// GetBalance returns the account's balance under the account's read lock so
// it never observes a half-applied transaction.
func (s *Service) GetBalance(accountID uuid.UUID) (money.Money, error) {
	lk := s.locks.For(accountID)
	lk.RLock()
	defer lk.RUnlock()
	a, err := s.accounts.Get(accountID)
	if err != nil {
		return money.Money{}, err
	}
	return a.Balance(), nil
}
