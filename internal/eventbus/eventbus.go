package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"projectpager/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventNavigatorConfigured      = domain.EventNavigatorConfigured
	EventPagerSetupRequested      = domain.EventPagerSetupRequested
	EventDismissRequested         = domain.EventDismissRequested
	EventTransitionCanceled       = domain.EventTransitionCanceled
	EventTransitionFinished       = domain.EventTransitionFinished
	EventAnimatorInFlightChanged  = domain.EventAnimatorInFlightChanged
	EventTransitionProgressed     = domain.EventTransitionProgressed
	EventStatusBarUpdateRequested = domain.EventStatusBarUpdateRequested
	EventPageChanged              = domain.EventPageChanged
)

// Re-export domain event types
type NavigatorConfiguredEvent = domain.NavigatorConfiguredEvent
type PagerSetupRequestedEvent = domain.PagerSetupRequestedEvent
type DismissRequestedEvent = domain.DismissRequestedEvent
type TransitionCanceledEvent = domain.TransitionCanceledEvent
type TransitionFinishedEvent = domain.TransitionFinishedEvent
type AnimatorInFlightChangedEvent = domain.AnimatorInFlightChangedEvent
type TransitionProgressedEvent = domain.TransitionProgressedEvent
type StatusBarUpdateRequestedEvent = domain.StatusBarUpdateRequestedEvent
type PageChangedEvent = domain.PageChangedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus.
//
// Dispatch is synchronous: Publish invokes every matching handler before it
// returns. The navigator emits several derived events per input call and
// subscribers must observe them in exactly that order, so events are never
// queued or handed to goroutines.
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]registration
}

type registration struct {
	id      int
	handler EventHandler
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]registration),
	}
}

// Publish delivers an event to all subscribers, in subscription order.
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventTransitionProgressed, EventAnimatorInFlightChanged:
		// Emitted once per gesture sample, too frequent to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.RLock()
	regs := b.handlers[event.Type()]
	// Make a copy so handlers can subscribe/unsubscribe while dispatching
	regsCopy := make([]registration, len(regs))
	copy(regsCopy, regs)
	b.mu.RUnlock()

	for _, reg := range regsCopy {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			reg.handler(event)
		}()
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		regs := b.handlers[eventType]
		for i, reg := range regs {
			if reg.id == id {
				b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
				break
			}
		}
	}
}
