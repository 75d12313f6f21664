package eventbus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"projectpager/internal/domain"
)

func TestPublishDeliversSynchronously(t *testing.T) {
	t.Parallel()
	bus := New()

	var got []DomainEvent
	bus.Subscribe(EventPageChanged, func(e DomainEvent) {
		got = append(got, e)
	})

	bus.Publish(domain.PageChangedEvent{Index: 2})
	require.Len(t, got, 1, "handler should run before Publish returns")
	require.Equal(t, 2, got[0].(domain.PageChangedEvent).Index)
}

func TestSubscribersReceiveInSubscriptionOrder(t *testing.T) {
	t.Parallel()
	bus := New()

	var order []string
	bus.Subscribe(EventDismissRequested, func(DomainEvent) { order = append(order, "first") })
	bus.Subscribe(EventDismissRequested, func(DomainEvent) { order = append(order, "second") })

	bus.Publish(domain.DismissRequestedEvent{})
	require.Equal(t, []string{"first", "second"}, order)
}

func TestEventsOnlyReachMatchingType(t *testing.T) {
	t.Parallel()
	bus := New()

	calls := 0
	bus.Subscribe(EventTransitionCanceled, func(DomainEvent) { calls++ })

	bus.Publish(domain.TransitionFinishedEvent{})
	require.Zero(t, calls)

	bus.Publish(domain.TransitionCanceledEvent{})
	require.Equal(t, 1, calls)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	bus := New()

	calls := 0
	unsubscribe := bus.Subscribe(EventPageChanged, func(DomainEvent) { calls++ })

	bus.Publish(domain.PageChangedEvent{Index: 0})
	unsubscribe()
	bus.Publish(domain.PageChangedEvent{Index: 1})

	require.Equal(t, 1, calls)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	t.Parallel()
	bus := New()

	reached := false
	bus.Subscribe(EventPageChanged, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventPageChanged, func(DomainEvent) { reached = true })

	require.NotPanics(t, func() {
		bus.Publish(domain.PageChangedEvent{Index: 0})
	})
	require.True(t, reached, "remaining handlers still run after a panic")
}
