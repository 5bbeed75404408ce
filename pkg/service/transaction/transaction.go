// Package transaction provides the single entry point for all balance
// changes. Every deposit and withdrawal flows through MakeTransaction, which
// keeps the balance and its audit record from ever diverging.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/bankcore/ledger/pkg/domain/money"
	"github.com/bankcore/ledger/pkg/eventbus"
	"github.com/bankcore/ledger/pkg/lock"
	"github.com/bankcore/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Service validates and applies deposit and withdraw requests, persisting
// one transaction record per applied mutation.
type Service struct {
	accounts     repository.AccountRepository
	transactions repository.TransactionRepository
	locks        *lock.Registry
	bus          eventbus.Bus
	logger       *slog.Logger
}

// NewService creates a Service from the dependency container.
func NewService(deps config.Deps) *Service {
	return &Service{
		accounts:     deps.Accounts,
		transactions: deps.Transactions,
		locks:        deps.Locks,
		bus:          deps.Bus,
		logger:       deps.Logger.With("service", "transaction"),
	}
}

// MakeTransaction applies one deposit or withdrawal to the account and
// records it. The balance mutation and the history append happen inside the
// account's write lock: a concurrent reader can never observe one without
// the other. On any failure neither the balance nor the history changes.
func (s *Service) MakeTransaction(
	ctx context.Context,
	accountID uuid.UUID,
	amount money.Money,
	kind account.TransactionKind,
) (*account.Transaction, error) {
	if !amount.IsPositive() {
		return nil, money.ErrInvalidAmount
	}

	lk := s.locks.For(accountID)
	lk.Lock()
	defer lk.Unlock()

	a, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}

	switch kind {
	case account.KindDeposit:
		err = a.Deposit(amount)
	case account.KindWithdraw:
		err = a.Withdraw(amount)
	default:
		return nil, fmt.Errorf("unsupported transaction kind %q", kind)
	}
	if err != nil {
		s.logger.Error("transaction rejected",
			"account_id", accountID, "kind", kind, "amount", amount, "error", err)
		return nil, err
	}

	tx := account.NewTransaction(accountID, amount, kind)
	if err := s.transactions.Append(tx); err != nil {
		// Recording failed: reverse the balance change so the mutation
		// stays unobservable. Still inside the write lock, so no reader
		// can have seen the intermediate balance.
		if undoErr := s.undo(a, amount, kind); undoErr != nil {
			return nil, fmt.Errorf("recording transaction: %w (compensation failed: %v)", err, undoErr)
		}
		return nil, fmt.Errorf("recording transaction: %w", err)
	}

	s.logger.Info("transaction applied",
		"transaction_id", tx.ID, "account_id", accountID, "kind", kind, "amount", amount)
	_ = s.bus.Emit(ctx, account.TransactionCreatedEvent{Transaction: tx})
	return tx, nil
}

func (s *Service) undo(a *account.Account, amount money.Money, kind account.TransactionKind) error {
	switch kind {
	case account.KindDeposit:
		return a.Withdraw(amount)
	case account.KindWithdraw:
		return a.Deposit(amount)
	}
	return nil
}
