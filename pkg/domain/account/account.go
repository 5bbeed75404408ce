// Package account defines the Account aggregate and the transaction records
// that make up an account's history. The aggregate owns its balance: nothing
// outside this package reads or writes it except through Deposit, Withdraw
// and Balance.
package account

import (
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/bankcore/ledger/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when an account with the same id
	// already exists in the repository.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidAccountNumber is returned when an account number is not
	// exactly ten digits.
	ErrInvalidAccountNumber = errors.New("account number must be 10 digits")
	// ErrNoTransactions is returned when an account has no recorded
	// transaction history yet.
	ErrNoTransactions = errors.New("account has no transactions")
)

var accountNumberRe = regexp.MustCompile(`^\d{10}$`)

// Account represents a customer's account. It is the aggregate root for
// balance changes.
//
// Invariants:
//   - Number is exactly ten digits.
//   - The balance is never negative.
//   - Balance mutations on the same account serialize through an internal
//     mutex; Deposit and Withdraw are atomic with respect to each other.
type Account struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Number     string
	CreatedAt  time.Time

	mu      sync.Mutex
	balance money.Money
}

// Builder constructs Account instances, enforcing invariants before an
// account can exist.
type Builder struct {
	id         uuid.UUID
	customerID uuid.UUID
	number     string
	balance    money.Money
	createdAt  time.Time
}

// New returns a Builder with a fresh id and a zero balance.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// WithID overrides the generated id. Used for hydration and tests.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithCustomerID sets the owning customer. Mandatory.
func (b *Builder) WithCustomerID(customerID uuid.UUID) *Builder {
	b.customerID = customerID
	return b
}

// WithNumber sets the ten-digit account number. Mandatory.
func (b *Builder) WithNumber(number string) *Builder {
	b.number = number
	return b
}

// WithBalance sets a starting balance. Only for hydration and test setup;
// accounts open at zero.
func (b *Builder) WithBalance(balance money.Money) *Builder {
	b.balance = balance
	return b
}

// Build validates the invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.customerID == uuid.Nil {
		return nil, errors.New("customer id is required")
	}
	if !accountNumberRe.MatchString(b.number) {
		return nil, ErrInvalidAccountNumber
	}
	return &Account{
		ID:         b.id,
		CustomerID: b.customerID,
		Number:     b.number,
		CreatedAt:  b.createdAt,
		balance:    b.balance,
	}, nil
}

// Deposit adds amount to the balance. The amount must be strictly positive.
// Depositing does not record history; recording is the transaction service's
// responsibility.
func (a *Account) Deposit(amount money.Money) error {
	if !amount.IsPositive() {
		return money.ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. The amount must be strictly
// positive and must not exceed the current balance.
func (a *Account) Withdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return money.ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	balance, err := a.balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

// Balance returns a snapshot of the current balance.
func (a *Account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}
