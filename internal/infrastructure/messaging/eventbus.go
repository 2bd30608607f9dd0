// Package messaging provides the in-process event bus that connects
// command handlers to event subscribers.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// ErrEventBusClosed is returned when operations are attempted on a closed bus.
var ErrEventBusClosed = errors.New("event bus is closed")

// InMemoryEventBus dispatches domain events to subscribed handlers.
// Dispatch is synchronous: Publish returns after every handler has run,
// so callers observe side effects immediately. Handler errors and panics
// are logged and never propagate to the publisher.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	logger      *zap.Logger
	closed      bool
}

// NewInMemoryEventBus creates a new event bus.
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryEventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		logger:   logger,
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed handler", zap.String("event_type", string(eventType)))
	return nil
}

// SubscribeAll registers a handler that receives every event.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	return nil
}

// Publish implements shared.EventPublisher.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrEventBusClosed
	}

	type dispatch struct {
		event    shared.Event
		handlers []shared.EventHandler
	}
	dispatches := make([]dispatch, 0, len(events))
	for _, event := range events {
		if event == nil {
			continue
		}
		handlers := make([]shared.EventHandler, 0,
			len(b.handlers[event.EventType()])+len(b.allHandlers))
		handlers = append(handlers, b.handlers[event.EventType()]...)
		handlers = append(handlers, b.allHandlers...)
		dispatches = append(dispatches, dispatch{event: event, handlers: handlers})
	}
	b.mu.RUnlock()

	for _, d := range dispatches {
		for _, handler := range d.handlers {
			b.execute(ctx, d.event, handler)
		}
	}
	return nil
}

func (b *InMemoryEventBus) execute(ctx context.Context, event shared.Event, handler shared.EventHandler) {
	start := time.Now()
	err := b.safeHandle(ctx, event, handler)
	if err != nil {
		b.logger.Error("event handler failed",
			zap.String("event_type", string(event.EventType())),
			zap.String("aggregate_id", event.AggregateID()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
	}
}

func (b *InMemoryEventBus) safeHandle(ctx context.Context, event shared.Event, handler shared.EventHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler.Handle(ctx, event)
}

// Close stops the bus. Further Subscribe and Publish calls fail with
// ErrEventBusClosed.
func (b *InMemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.logger.Info("event bus closed")
	return nil
}
