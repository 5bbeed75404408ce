package account

import (
	"time"

	"github.com/bankcore/ledger/pkg/domain/money"
	"github.com/google/uuid"
)

// TransactionKind classifies a balance mutation.
type TransactionKind string

// The two kinds of balance mutation the ledger records.
const (
	KindDeposit  TransactionKind = "DEPOSIT"
	KindWithdraw TransactionKind = "WITHDRAW"
)

// Transaction is the immutable fact of one completed deposit or withdrawal.
// It is created exactly once per successfully applied mutation and never
// changes afterwards.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Amount    money.Money
	Kind      TransactionKind
	CreatedAt time.Time
}

// NewTransaction creates a Transaction with a fresh id and the current time.
func NewTransaction(accountID uuid.UUID, amount money.Money, kind TransactionKind) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTransactionFromData creates a Transaction from raw data. This bypasses
// id and timestamp generation and should only be used for test fixtures.
func NewTransactionFromData(
	id, accountID uuid.UUID,
	amount money.Money,
	kind TransactionKind,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:        id,
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
		CreatedAt: created,
	}
}
