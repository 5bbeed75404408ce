// Package eventbus provides the in-memory event bus implementation.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bankcore/ledger/pkg/eventbus"
)

// MemoryEventBus is a simple in-memory implementation of eventbus.Bus.
// Handlers run synchronously on the publishing goroutine.
type MemoryEventBus struct {
	mu        sync.RWMutex
	handlers  map[string][]eventbus.HandlerFunc
	logger    *slog.Logger
	published []eventbus.Event // retained for test assertions
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers: make(map[string][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

// Register subscribes a handler to an event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all handlers registered for its type.
func (b *MemoryEventBus) Emit(ctx context.Context, event eventbus.Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	b.mu.Lock()
	b.published = append(b.published, event)
	b.mu.Unlock()

	b.logger.Debug("emitting event", "type", event.Type(), "handlers", len(handlers))
	for _, handler := range handlers {
		handler(ctx, event)
	}
	return nil
}

// Published returns the events emitted so far. Useful for tests.
func (b *MemoryEventBus) Published() []eventbus.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]eventbus.Event, len(b.published))
	copy(out, b.published)
	return out
}
