// Package account provides the in-memory account repository. The ledger is
// memory-resident by design; this is the authoritative store, not a cache.
package account

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/google/uuid"
)

// Repository indexes accounts by id and by owning customer. Safe for
// concurrent use.
type Repository struct {
	mu         sync.RWMutex
	accounts   map[uuid.UUID]*account.Account
	byCustomer map[uuid.UUID][]*account.Account

	// nextNumber advances atomically so a consumed number is never reused,
	// even when the subsequent Create fails.
	nextNumber atomic.Int64
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{
		accounts:   make(map[uuid.UUID]*account.Account),
		byCustomer: make(map[uuid.UUID][]*account.Account),
	}
}

// NextAccountNumber returns the next ten-digit zero-padded account number.
func (r *Repository) NextAccountNumber() string {
	return fmt.Sprintf("%010d", r.nextNumber.Add(1))
}

// Create indexes the account by id and under its customer, preserving
// insertion order. Returns account.ErrDuplicateAccount if the id exists.
func (r *Repository) Create(a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; ok {
		return account.ErrDuplicateAccount
	}
	r.accounts[a.ID] = a
	r.byCustomer[a.CustomerID] = append(r.byCustomer[a.CustomerID], a)
	return nil
}

// Get returns the account with the given id, or account.ErrAccountNotFound.
func (r *Repository) Get(id uuid.UUID) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	return a, nil
}

// ListByCustomer returns the customer's accounts in creation order. A
// customer with no accounts yields an empty slice.
func (r *Repository) ListByCustomer(customerID uuid.UUID) []*account.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	accounts := r.byCustomer[customerID]
	out := make([]*account.Account, len(accounts))
	copy(out, accounts)
	return out
}
