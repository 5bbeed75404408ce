// Package statement renders an account's transaction history as a
// read-only projection. It never mutates ledger state.
package statement

import (
	"fmt"
	"strings"

	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/pkg/lock"
	"github.com/bankcore/ledger/pkg/repository"
	"github.com/google/uuid"
)

// timestampLayout is the timestamp format used on statement lines.
const timestampLayout = "2006-01-02 15:04:05"

// Service generates account statements from recorded transactions.
type Service struct {
	transactions repository.TransactionRepository
	locks        *lock.Registry
}

// NewService creates a Service from the dependency container.
func NewService(deps config.Deps) *Service {
	return &Service{
		transactions: deps.Transactions,
		locks:        deps.Locks,
	}
}

// Generate renders the account's history oldest first, one line per record:
//
//	DATE: <timestamp> ------ TYPE: <kind> ------- AMOUNT: P<amount>
//
// Returns account.ErrNoTransactions when the account has no history yet.
// The read lock guarantees the statement reflects only fully applied
// transactions.
func (s *Service) Generate(accountID uuid.UUID) (string, error) {
	lk := s.locks.For(accountID)
	lk.RLock()
	defer lk.RUnlock()

	records, err := s.transactions.ListByAccount(accountID)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(records))
	for i, tx := range records {
		lines[i] = fmt.Sprintf("DATE: %s ------ TYPE: %s ------- AMOUNT: P%s",
			tx.CreatedAt.Format(timestampLayout), tx.Kind, tx.Amount)
	}
	return strings.Join(lines, "\n"), nil
}
