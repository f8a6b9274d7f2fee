package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

var _ ports.EventDispatcher = (*AsyncDispatcher)(nil)

// ErrClosed is returned by Close when the dispatcher was already closed.
var ErrClosed = errors.New("dispatcher closed")

// DefaultEnqueueTimeout bounds how long Dispatch waits on a full queue.
const DefaultEnqueueTimeout = 250 * time.Millisecond

type envelope struct {
	ctx   context.Context
	event domain.Event
}

// AsyncDispatcher queues events for a single worker that forwards them to
// the wrapped dispatcher. One worker keeps delivery in dispatch order.
type AsyncDispatcher struct {
	next   ports.EventDispatcher
	logger *slog.Logger
	queue  chan envelope
	done   chan struct{}

	enqueueTimeout time.Duration

	mu     sync.RWMutex
	closed bool
}

// AsyncOption configures an AsyncDispatcher.
type AsyncOption func(*AsyncDispatcher)

// WithEnqueueTimeout sets how long Dispatch waits for room in a full queue
// before dropping the event. Non-positive values keep DefaultEnqueueTimeout.
func WithEnqueueTimeout(timeout time.Duration) AsyncOption {
	return func(d *AsyncDispatcher) {
		if timeout > 0 {
			d.enqueueTimeout = timeout
		}
	}
}

// NewAsyncDispatcher starts the worker. bufferSize below 1 is treated as 1.
func NewAsyncDispatcher(next ports.EventDispatcher, bufferSize int, logger *slog.Logger, opts ...AsyncOption) *AsyncDispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	d := &AsyncDispatcher{
		next:           next,
		logger:         logger,
		queue:          make(chan envelope, max(bufferSize, 1)),
		done:           make(chan struct{}),
		enqueueTimeout: DefaultEnqueueTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	go d.work()
	return d
}

// Dispatch implements ports.EventDispatcher. On a full queue it waits up to
// the enqueue timeout, or until ctx ends, then drops the event with a
// warning. Events dispatched after Close are dropped the same way.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, event domain.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ctx, event, "dropping event after close")
		return
	}

	env := envelope{ctx: context.WithoutCancel(ctx), event: event}
	select {
	case d.queue <- env:
		return
	default:
	}

	timer := time.NewTimer(d.enqueueTimeout)
	defer timer.Stop()
	select {
	case d.queue <- env:
	case <-timer.C:
		d.drop(ctx, event, "dropping event, queue full")
	case <-ctx.Done():
		d.drop(ctx, event, "dropping event, request ended while queue full")
	}
}

func (d *AsyncDispatcher) drop(ctx context.Context, event domain.Event, msg string) {
	d.logger.WarnContext(ctx, msg,
		slog.String("event_type", event.EventType().String()),
		slog.String("aggregate_id", event.AggregateID()),
	)
}

// Close stops intake and waits for queued events to be delivered. It returns
// ctx.Err() if ctx ends first; the worker keeps draining in the background.
func (d *AsyncDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		d.logger.WarnContext(ctx, "event drain interrupted", slog.Int("pending", len(d.queue)))
		return ctx.Err()
	}
}

func (d *AsyncDispatcher) work() {
	defer close(d.done)
	for env := range d.queue {
		d.deliver(env)
	}
}

func (d *AsyncDispatcher) deliver(env envelope) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(env.ctx, "event delivery panicked",
				slog.String("event_type", env.event.EventType().String()),
				slog.Any("panic", r),
			)
		}
	}()
	d.next.Dispatch(env.ctx, env.event)
}
