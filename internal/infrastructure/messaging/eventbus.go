// Package messaging implements the in-memory event bus for the SOLID
// examples application. Delivery is synchronous: Publish returns after every
// subscribed handler has run. There are no workers and no retries - all
// operations in this codebase are synchronous by design of the examples.
package messaging

import (
	"context"
	"errors"
	"sync"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/pkg/logger"
)

// ErrEventBusClosed is returned when publishing on a closed bus.
var ErrEventBusClosed = errors.New("messaging: event bus is closed")

// InMemoryBus is a synchronous in-memory implementation of shared.EventPublisher.
type InMemoryBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	log         *logger.Logger
	closed      bool
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	if log == nil {
		log = logger.Default()
	}
	return &InMemoryBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		log:      log.With(logger.Component("eventbus")),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("messaging: handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.log.Debug("subscribed handler",
		logger.String("event_type", string(eventType)),
		logger.String("handler", handler.Name()),
	)

	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("messaging: handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	return nil
}

// Publish sends an event to all subscribed handlers synchronously.
// Handler errors are logged and do not stop delivery to other handlers.
func (b *InMemoryBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("messaging: event cannot be nil")
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrEventBusClosed
	}
	targets := make([]shared.EventHandler, 0,
		len(b.handlers[event.EventType()])+len(b.allHandlers))
	targets = append(targets, b.handlers[event.EventType()]...)
	targets = append(targets, b.allHandlers...)
	b.mu.RUnlock()

	ctx := context.Background()
	for _, h := range targets {
		if err := h.Handle(ctx, event); err != nil {
			b.log.Error("event handler failed",
				logger.String("event_type", string(event.EventType())),
				logger.String("handler", h.Name()),
				logger.Err(err),
			)
		}
	}

	return nil
}

// Close marks the bus as closed; further publishes fail.
func (b *InMemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// Compile-time interface check.
var _ shared.EventPublisher = (*InMemoryBus)(nil)
