package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNavigatorConfigured      EventType = "NavigatorConfigured"
	EventPagerSetupRequested      EventType = "PagerSetupRequested"
	EventDismissRequested         EventType = "DismissRequested"
	EventTransitionCanceled       EventType = "TransitionCanceled"
	EventTransitionFinished       EventType = "TransitionFinished"
	EventAnimatorInFlightChanged  EventType = "AnimatorInFlightChanged"
	EventTransitionProgressed     EventType = "TransitionProgressed"
	EventStatusBarUpdateRequested EventType = "StatusBarUpdateRequested"
	EventPageChanged              EventType = "PageChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NavigatorConfiguredEvent re-emits the latest configuration once both the
// configuration and the view-ready signal have arrived, and again on every
// reconfiguration after that.
type NavigatorConfiguredEvent struct {
	Config NavigatorConfig
}

func (e NavigatorConfiguredEvent) Type() EventType { return EventNavigatorConfigured }

// PagerSetupRequestedEvent is emitted when the view reports ready and the
// initial pager page should be installed.
type PagerSetupRequestedEvent struct{}

func (e PagerSetupRequestedEvent) Type() EventType { return EventPagerSetupRequested }

// DismissRequestedEvent is emitted when a downward drag begins an
// interactive dismissal.
type DismissRequestedEvent struct{}

func (e DismissRequestedEvent) Type() EventType { return EventDismissRequested }

// TransitionCanceledEvent is emitted when an interactive dismissal is
// abandoned and the page should settle back.
type TransitionCanceledEvent struct{}

func (e TransitionCanceledEvent) Type() EventType { return EventTransitionCanceled }

// TransitionFinishedEvent is emitted when a released drag carries enough
// velocity to complete the dismissal.
type TransitionFinishedEvent struct{}

func (e TransitionFinishedEvent) Type() EventType { return EventTransitionFinished }

// AnimatorInFlightChangedEvent reports every change of the "transition in
// progress" flag, in both directions.
type AnimatorInFlightChangedEvent struct {
	InFlight bool
}

func (e AnimatorInFlightChangedEvent) Type() EventType { return EventAnimatorInFlightChanged }

// TransitionProgressedEvent carries the vertical translation of one gesture
// sample taken while a dismissal is in progress.
type TransitionProgressedEvent struct {
	Translation float64
}

func (e TransitionProgressedEvent) Type() EventType { return EventTransitionProgressed }

// StatusBarUpdateRequestedEvent is emitted after a completed page swipe; the
// host should refresh its status bar appearance.
type StatusBarUpdateRequestedEvent struct{}

func (e StatusBarUpdateRequestedEvent) Type() EventType { return EventStatusBarUpdateRequested }

// PageChangedEvent notifies the delegate that a swipe landed on a new page
// index. Suppressed entirely when the target index is unknown.
type PageChangedEvent struct {
	Index int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }
