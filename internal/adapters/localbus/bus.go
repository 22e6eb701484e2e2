// Package localbus is the in-process implementation of the logout
// notification channel. It serves single-process deployments and tests:
// several session managers attached to one Bus behave like browser tabs
// sharing storage events.
package localbus

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/target/settle-ui-api/internal/ports"
)

// Bus fans logout events out to every subscriber except the publisher's
// own endpoint. Use Endpoint to obtain one bus handle per context.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]subscriber
}

type subscriber struct {
	origin  string
	handler func(ports.LogoutEvent)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]subscriber)}
}

// Endpoint returns a context-scoped handle on the bus. Each endpoint has
// its own origin ID, so its subscriptions never observe its own
// publications.
func (b *Bus) Endpoint() *Endpoint {
	return &Endpoint{bus: b, origin: uuid.NewString()}
}

func (b *Bus) publish(ev ports.LogoutEvent) {
	b.mu.Lock()
	handlers := make([]func(ports.LogoutEvent), 0, len(b.subs))
	for _, s := range b.subs {
		if s.origin == ev.Origin {
			continue
		}
		handlers = append(handlers, s.handler)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

func (b *Bus) subscribe(origin string, handler func(ports.LogoutEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = subscriber{origin: origin, handler: handler}

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Endpoint is one context's handle on a shared Bus.
type Endpoint struct {
	bus    *Bus
	origin string
}

// Origin returns the endpoint's identity.
func (e *Endpoint) Origin() string { return e.origin }

// Publish delivers the event synchronously to every other endpoint's
// subscribers.
func (e *Endpoint) Publish(_ context.Context, ev ports.LogoutEvent) error {
	ev.Origin = e.origin
	e.bus.publish(ev)
	return nil
}

// Subscribe registers a handler for foreign logout events and returns
// its unsubscribe func.
func (e *Endpoint) Subscribe(handler func(ports.LogoutEvent)) func() {
	return e.bus.subscribe(e.origin, handler)
}

var _ ports.LogoutBus = (*Endpoint)(nil)
