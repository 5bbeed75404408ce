package account

// Event type names published on the event bus.
const (
	EventTypeAccountCreated     = "account.created"
	EventTypeTransactionCreated = "transaction.created"
)

// CreatedEvent is published after a new account has been persisted.
type CreatedEvent struct {
	Account *Account
}

// Type implements eventbus.Event.
func (CreatedEvent) Type() string { return EventTypeAccountCreated }

// TransactionCreatedEvent is published after a balance mutation and its
// record have both been applied.
type TransactionCreatedEvent struct {
	Transaction *Transaction
}

// Type implements eventbus.Event.
func (TransactionCreatedEvent) Type() string { return EventTypeTransactionCreated }
