// Package events delivers domain events to in-process subscribers.
//
// Bus calls handlers synchronously on the dispatching goroutine.
// AsyncDispatcher moves delivery onto a single worker so commands return
// without waiting for subscribers.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

var _ ports.EventDispatcher = (*Bus)(nil)

// Handler reacts to one event. A returned error is logged by the Bus and
// never reaches the command that produced the event.
type Handler func(ctx context.Context, event domain.Event) error

type subscription struct {
	name    string
	handler Handler
}

// Bus is a synchronous publisher. Handlers for a specific type run before
// handlers subscribed to all events, each group in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[domain.EventType][]subscription
	all      []subscription
	logger   *slog.Logger
}

// NewBus creates a Bus. A nil logger discards output.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Bus{
		handlers: make(map[domain.EventType][]subscription),
		logger:   logger,
	}
}

// Subscribe registers h for events of type t. name identifies the handler
// in logs.
func (b *Bus) Subscribe(t domain.EventType, name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], subscription{name: name, handler: h})
}

// SubscribeAll registers h for every event type.
func (b *Bus) SubscribeAll(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, subscription{name: name, handler: h})
}

// Dispatch implements ports.EventDispatcher.
func (b *Bus) Dispatch(ctx context.Context, event domain.Event) {
	b.mu.RLock()
	typed := b.handlers[event.EventType()]
	subs := make([]subscription, 0, len(typed)+len(b.all))
	subs = append(subs, typed...)
	subs = append(subs, b.all...)
	b.mu.RUnlock()

	for _, sub := range subs {
		if err := invoke(ctx, sub.handler, event); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed",
				slog.String("handler", sub.name),
				slog.String("event_type", event.EventType().String()),
				slog.String("aggregate_id", event.AggregateID()),
				slog.Any("error", err),
			)
		}
	}
}

// invoke turns a handler panic into an error.
func invoke(ctx context.Context, h Handler, event domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h(ctx, event)
}
