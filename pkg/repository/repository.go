// Package repository defines the data access interfaces for the ledger.
// Implementations live under infra/repository.
package repository

import (
	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/bankcore/ledger/pkg/domain/customer"
	"github.com/google/uuid"
)

// AccountRepository is the authoritative, indexed store of accounts.
type AccountRepository interface {
	// NextAccountNumber returns the next ten-digit zero-padded account
	// number. Numbers are strictly increasing and never reused, even when
	// a later Create fails; gaps are an accepted consequence.
	NextAccountNumber() string

	// Create indexes a new account by id and under its customer.
	// Returns account.ErrDuplicateAccount if the id is already present.
	Create(a *account.Account) error

	// Get returns the account with the given id, or
	// account.ErrAccountNotFound.
	Get(id uuid.UUID) (*account.Account, error)

	// ListByCustomer returns the customer's accounts in creation order.
	// A customer with no accounts yields an empty slice, not an error.
	ListByCustomer(customerID uuid.UUID) []*account.Account
}

// TransactionRepository is the append-only store of transaction records.
type TransactionRepository interface {
	// Append adds a record to its account's history, preserving insertion
	// order. Records are never overwritten or removed.
	Append(tx *account.Transaction) error

	// ListByAccount returns the account's records oldest first, or
	// account.ErrNoTransactions when no history has been recorded yet.
	ListByAccount(accountID uuid.UUID) ([]*account.Transaction, error)
}

// CustomerRepository stores customer identity records.
type CustomerRepository interface {
	// Create stores a new customer. Returns customer.ErrDuplicateCustomer
	// if the id is already present.
	Create(c *customer.Customer) error

	// Get returns the customer with the given id, or
	// customer.ErrCustomerNotFound.
	Get(id uuid.UUID) (*customer.Customer, error)
}
