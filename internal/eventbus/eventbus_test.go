package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New()
	received := make(chan DomainEvent, 1)

	bus.Subscribe(EventDocumentChanged, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(DocumentChangedEvent{Path: "/docs/a.md"})

	e := waitFor(t, received)
	changed, ok := e.(DocumentChangedEvent)
	require.True(t, ok)
	require.Equal(t, "/docs/a.md", changed.Path)
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	bus := New()
	received := make(chan DomainEvent, 2)

	bus.Subscribe(EventDocumentRemoved, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(DocumentChangedEvent{Path: "/docs/a.md"})
	bus.Publish(DocumentRemovedEvent{Path: "/docs/b.md"})

	e := waitFor(t, received)
	require.Equal(t, EventDocumentRemoved, e.Type())

	select {
	case extra := <-received:
		t.Fatalf("unexpected extra event: %v", extra.Type())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMultipleSubscribers(t *testing.T) {
	bus := New()
	first := make(chan DomainEvent, 1)
	second := make(chan DomainEvent, 1)

	bus.Subscribe(EventError, func(e DomainEvent) { first <- e })
	bus.Subscribe(EventError, func(e DomainEvent) { second <- e })

	bus.Publish(ErrorEvent{Message: "boom"})

	waitFor(t, first)
	waitFor(t, second)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	first := make(chan DomainEvent, 2)
	second := make(chan DomainEvent, 2)

	unsubscribe := bus.Subscribe(EventError, func(e DomainEvent) { first <- e })
	bus.Subscribe(EventError, func(e DomainEvent) { second <- e })

	bus.Publish(ErrorEvent{Message: "before"})
	waitFor(t, first)
	waitFor(t, second)

	unsubscribe()
	// Calling it again must be harmless
	unsubscribe()

	bus.Publish(ErrorEvent{Message: "after"})
	waitFor(t, second)

	select {
	case e := <-first:
		t.Fatalf("unsubscribed handler still received %v", e.Type())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	bus := New()
	received := make(chan DomainEvent, 1)

	bus.Subscribe(EventError, func(e DomainEvent) {
		panic("handler exploded")
	})
	bus.Subscribe(EventError, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ErrorEvent{Message: "first"})
	waitFor(t, received)

	bus.Publish(ErrorEvent{Message: "second"})
	waitFor(t, received)
}
