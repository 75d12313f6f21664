package navigator

import (
	"projectpager/internal/analytics"
	"projectpager/internal/domain"
	"projectpager/internal/eventbus"
)

// ViewModel coordinates the swipe-driven project pager. It consumes the four
// raw host inputs (configuration, view-ready, page-transition completions and
// pan-gesture samples) and publishes the derived navigation events on the
// bus. Every input slot is latest-value-wins; nothing is queued.
//
// All methods are expected to be called from the host's single event-dispatch
// goroutine. Derived events are published synchronously before the input call
// returns, in a fixed order per call: dismiss/cancel/finish first, then the
// in-flight flag, then drag progress.
type ViewModel struct {
	bus     eventbus.EventBus
	tracker analytics.Tracker

	// latest-value input slots
	config    *domain.NavigatorConfig
	readySeen bool
	target    *pendingTarget
	phase     domain.TransitionPhase

	// de-duplication state for the phase-derived streams
	phaseEmitted  bool
	lastPhase     domain.TransitionPhase
	activeEmitted bool
	lastActive    bool

	// most recent of the configured project and the swiped-to project
	currentProject *domain.Project
}

// pendingTarget is the latest "about to show" project/index pair.
type pendingTarget struct {
	project domain.Project
	toIndex *int
}

// New creates a view model publishing on bus and reporting to tracker.
func New(bus eventbus.EventBus, tracker analytics.Tracker) *ViewModel {
	if tracker == nil {
		tracker = analytics.NopTracker{}
	}
	return &ViewModel{
		bus:     bus,
		tracker: tracker,
		phase:   domain.PhaseNone,
	}
}

// Configure supplies (or re-supplies) the navigator configuration. The
// configured event stays silent until ViewReady has also fired; after that
// every reconfiguration re-emits immediately.
func (vm *ViewModel) Configure(cfg domain.NavigatorConfig) {
	c := cfg
	vm.config = &c
	if vm.readySeen {
		vm.emitConfigured()
	}
}

// ViewReady signals that the host view finished loading. It requests the
// initial pager setup on every call and opens the configuration gate.
func (vm *ViewModel) ViewReady() {
	vm.readySeen = true
	vm.bus.Publish(domain.PagerSetupRequestedEvent{})
	if vm.config != nil {
		vm.emitConfigured()
	}
}

// WillTransition records the project/index the pager is about to show. It
// produces no event by itself; the next completed PageTransition consumes it.
func (vm *ViewModel) WillTransition(project domain.Project, toIndex *int) {
	vm.target = &pendingTarget{project: project, toIndex: toIndex}
}

// PageTransition reports a finished page animation. Incomplete transitions
// and transitions with no recorded target produce nothing.
func (vm *ViewModel) PageTransition(completed bool, fromIndex *int) {
	if !completed || vm.target == nil {
		return
	}

	target := vm.target
	swipe := domain.SwipeTarget{
		Project:       target.project,
		CurrentIndex:  target.toIndex,
		PreviousIndex: fromIndex,
	}

	vm.currentProject = &target.project
	vm.bus.Publish(domain.StatusBarUpdateRequestedEvent{})
	if swipe.CurrentIndex != nil {
		vm.bus.Publish(domain.PageChangedEvent{Index: *swipe.CurrentIndex})
	}

	if vm.gateOpen() {
		vm.tracker.TrackSwipedProject(swipe.Project, vm.config.RefTag, swipeDirection(swipe))
	}
}

// Panning folds one gesture sample into the transition phase and emits the
// phase-derived events. Progress pairs positionally: each sample is paired
// with the phase computed from that same sample, so no sample is skipped or
// emitted twice.
func (vm *ViewModel) Panning(sample domain.PanningData) {
	next := NextPhase(vm.phase, sample)
	vm.phase = next

	changed := !vm.phaseEmitted || vm.lastPhase != next
	vm.phaseEmitted = true
	vm.lastPhase = next

	if changed {
		switch next {
		case domain.PhaseStarted:
			vm.bus.Publish(domain.DismissRequestedEvent{})
		case domain.PhaseCanceling:
			vm.bus.Publish(domain.TransitionCanceledEvent{})
		case domain.PhaseFinishing:
			vm.bus.Publish(domain.TransitionFinishedEvent{})
			vm.trackClosed()
		}
	}

	active := next.Active()
	if !vm.activeEmitted || vm.lastActive != active {
		vm.activeEmitted = true
		vm.lastActive = active
		vm.bus.Publish(domain.AnimatorInFlightChangedEvent{InFlight: active})
	}

	if next == domain.PhaseStarted || next == domain.PhaseUpdating {
		vm.bus.Publish(domain.TransitionProgressedEvent{Translation: sample.Translation.Y})
	}
}

// Phase returns the current transition phase.
func (vm *ViewModel) Phase() domain.TransitionPhase {
	return vm.phase
}

// CurrentProject returns the most recently shown project, or nil before the
// first configuration/swipe.
func (vm *ViewModel) CurrentProject() *domain.Project {
	return vm.currentProject
}

func (vm *ViewModel) emitConfigured() {
	vm.currentProject = &vm.config.Project
	vm.bus.Publish(domain.NavigatorConfiguredEvent{Config: *vm.config})
}

// gateOpen reports whether the configuration gate has produced a value, which
// both analytics taps pair against.
func (vm *ViewModel) gateOpen() bool {
	return vm.config != nil && vm.readySeen
}

func (vm *ViewModel) trackClosed() {
	if !vm.gateOpen() || vm.currentProject == nil {
		return
	}
	vm.tracker.TrackClosedProjectPage(*vm.currentProject, vm.config.RefTag, analytics.GestureSwipe)
}

// swipeDirection classifies a completed swipe; missing indexes default to 0.
func swipeDirection(swipe domain.SwipeTarget) string {
	current, previous := 0, 0
	if swipe.CurrentIndex != nil {
		current = *swipe.CurrentIndex
	}
	if swipe.PreviousIndex != nil {
		previous = *swipe.PreviousIndex
	}
	if current > previous {
		return analytics.DirectionNext
	}
	return analytics.DirectionPrevious
}
