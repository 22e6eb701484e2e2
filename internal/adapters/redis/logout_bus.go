package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/target/settle-ui-api/internal/ports"
)

// LogoutBus broadcasts logout events between gateway processes over a
// Redis pub/sub channel. Each bus instance carries a unique origin ID;
// events published by an instance are filtered out of its own
// subscriptions, matching storage-event semantics where same-context
// mutations never self-trigger.
type LogoutBus struct {
	client  redis.UniversalClient
	channel string
	origin  string
	logger  *slog.Logger

	mu       sync.Mutex
	nextID   int
	handlers map[int]func(ports.LogoutEvent)
	cancel   context.CancelFunc
}

// LogoutBusOptions configure a LogoutBus.
type LogoutBusOptions struct {
	Client  redis.UniversalClient
	Channel string // pub/sub channel name; defaults to "credential:logout"
	Logger  *slog.Logger
}

// NewLogoutBus constructs a bus and starts its listener goroutine. Close
// stops the listener and drops all subscriptions.
func NewLogoutBus(opts LogoutBusOptions) *LogoutBus {
	channel := opts.Channel
	if channel == "" {
		channel = "credential:logout"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	b := &LogoutBus{
		client:   opts.Client,
		channel:  channel,
		origin:   uuid.NewString(),
		logger:   logger,
		handlers: make(map[int]func(ports.LogoutEvent)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	go b.listen(ctx)

	return b
}

// Origin returns the bus instance's identity, used to filter self-published events.
func (b *LogoutBus) Origin() string { return b.origin }

// Publish broadcasts a logout event to all other contexts. The event's
// Origin is forced to this instance so subscribers on the same bus never
// see it.
func (b *LogoutBus) Publish(ctx context.Context, ev ports.LogoutEvent) error {
	ev.Origin = b.origin
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Subscribe registers a handler for foreign logout events and returns
// its unsubscribe func.
func (b *LogoutBus) Subscribe(handler func(ports.LogoutEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

// Close stops the listener goroutine.
func (b *LogoutBus) Close() {
	b.cancel()
}

func (b *LogoutBus) listen(ctx context.Context) {
	sub := b.client.Subscribe(ctx, b.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			b.logger.Warn("close logout subscription failed", "error", err)
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.dispatch(msg.Payload)
		}
	}
}

func (b *LogoutBus) dispatch(payload string) {
	var ev ports.LogoutEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		b.logger.Warn("drop malformed logout event", "error", err)
		return
	}
	if ev.Origin == b.origin {
		return
	}

	b.mu.Lock()
	handlers := make([]func(ports.LogoutEvent), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

var _ ports.LogoutBus = (*LogoutBus)(nil)
