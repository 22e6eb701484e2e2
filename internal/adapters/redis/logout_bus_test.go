package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/settle-ui-api/internal/ports"
)

func waitForEvent(t *testing.T, ch <-chan ports.LogoutEvent) ports.LogoutEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for logout event")
		return ports.LogoutEvent{}
	}
}

func TestLogoutBus_DeliversToForeignSubscriber(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	a := NewLogoutBus(LogoutBusOptions{Client: client, Channel: "test:logout"})
	defer a.Close()
	b := NewLogoutBus(LogoutBusOptions{Client: client, Channel: "test:logout"})
	defer b.Close()

	got := make(chan ports.LogoutEvent, 1)
	unsub := b.Subscribe(func(ev ports.LogoutEvent) { got <- ev })
	defer unsub()

	// Give the subscriber goroutine time to attach to the channel.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, a.Publish(context.Background(), ports.LogoutEvent{Marker: "m-1"}))

	ev := waitForEvent(t, got)
	assert.Equal(t, "m-1", ev.Marker)
	assert.Equal(t, a.Origin(), ev.Origin)
}

func TestLogoutBus_DoesNotSelfTrigger(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	a := NewLogoutBus(LogoutBusOptions{Client: client, Channel: "test:logout"})
	defer a.Close()
	b := NewLogoutBus(LogoutBusOptions{Client: client, Channel: "test:logout"})
	defer b.Close()

	selfGot := make(chan ports.LogoutEvent, 1)
	unsubSelf := a.Subscribe(func(ev ports.LogoutEvent) { selfGot <- ev })
	defer unsubSelf()

	foreignGot := make(chan ports.LogoutEvent, 1)
	unsubForeign := b.Subscribe(func(ev ports.LogoutEvent) { foreignGot <- ev })
	defer unsubForeign()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, a.Publish(context.Background(), ports.LogoutEvent{Marker: "m-2"}))

	// The foreign subscriber receives it; once it has, the publishing
	// side must still have seen nothing.
	waitForEvent(t, foreignGot)
	select {
	case <-selfGot:
		t.Fatal("publisher received its own logout event")
	default:
	}
}

func TestLogoutBus_UnsubscribeStopsDelivery(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	a := NewLogoutBus(LogoutBusOptions{Client: client, Channel: "test:logout"})
	defer a.Close()
	b := NewLogoutBus(LogoutBusOptions{Client: client, Channel: "test:logout"})
	defer b.Close()

	got := make(chan ports.LogoutEvent, 1)
	stayed := make(chan ports.LogoutEvent, 1)
	unsub := b.Subscribe(func(ev ports.LogoutEvent) { got <- ev })
	unsubStayed := b.Subscribe(func(ev ports.LogoutEvent) { stayed <- ev })
	defer unsubStayed()

	time.Sleep(100 * time.Millisecond)
	unsub()

	require.NoError(t, a.Publish(context.Background(), ports.LogoutEvent{Marker: "m-3"}))

	waitForEvent(t, stayed)
	select {
	case <-got:
		t.Fatal("unsubscribed handler still received an event")
	default:
	}
}
