// Package transaction provides the in-memory, append-only transaction store.
package transaction

import (
	"sync"

	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/google/uuid"
)

// Repository keeps each account's transaction records in insertion order.
// Safe for concurrent use.
type Repository struct {
	mu        sync.RWMutex
	byAccount map[uuid.UUID][]*account.Transaction
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{
		byAccount: make(map[uuid.UUID][]*account.Transaction),
	}
}

// Append adds the record to its account's history. Records are immutable and
// never removed, so insertion order is chronological order.
func (r *Repository) Append(tx *account.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAccount[tx.AccountID] = append(r.byAccount[tx.AccountID], tx)
	return nil
}

// ListByAccount returns a snapshot of the account's records, oldest first.
// Returns account.ErrNoTransactions when the account has no history yet.
func (r *Repository) ListByAccount(accountID uuid.UUID) ([]*account.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records, ok := r.byAccount[accountID]
	if !ok || len(records) == 0 {
		return nil, account.ErrNoTransactions
	}
	out := make([]*account.Transaction, len(records))
	copy(out, records)
	return out, nil
}
