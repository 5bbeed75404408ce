// Package eventbus defines the in-process event bus contract. The ledger
// publishes domain events after their state changes have been applied;
// subscribers observe, they never participate in ledger correctness.
package eventbus

import "context"

// Event is a fact published on the bus.
type Event interface {
	// Type returns the event type name used for handler registration.
	Type() string
}

// HandlerFunc handles one published event.
type HandlerFunc func(ctx context.Context, event Event)

// Bus dispatches events to registered handlers.
type Bus interface {
	// Register subscribes a handler to an event type.
	Register(eventType string, handler HandlerFunc)
	// Emit dispatches the event to all handlers registered for its type.
	Emit(ctx context.Context, event Event) error
}
