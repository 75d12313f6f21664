package domain

// RefTag identifies where a project view was initiated from. It is carried
// through to analytics untouched.
type RefTag string

// Project is the unit being paged through. The navigator treats it as an
// opaque payload; only the host and the catalog look inside.
type Project struct {
	Slug     string
	Name     string
	Blurb    string
	Creator  string
	Category string
}

// NavigatorConfig is the configuration supplied to the navigator once per
// screen lifetime. It may be re-supplied (e.g. after a catalog reload).
type NavigatorConfig struct {
	Index   *int
	Project Project
	RefTag  RefTag
}

// Point is a 2D point in host coordinates.
type Point struct {
	X float64
	Y float64
}

// PanningData is one sampled frame of a pan gesture. Samples are ephemeral;
// the navigator never retains them.
type PanningData struct {
	ContentOffset Point
	Translation   Point
	Velocity      Point
	IsDragging    bool
}

// SwipeTarget is the project/index pair captured when a page transition
// completes. Recomputed per completion event, never stored.
type SwipeTarget struct {
	Project       Project
	CurrentIndex  *int
	PreviousIndex *int
}

// TransitionPhase is the state of the interactive-dismissal machine.
type TransitionPhase int

const (
	PhaseNone TransitionPhase = iota
	PhaseStarted
	PhaseUpdating
	PhaseCanceling
	PhaseFinishing
)

// Active reports whether an interactive transition is in progress.
func (p TransitionPhase) Active() bool {
	return p == PhaseStarted || p == PhaseUpdating
}

func (p TransitionPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseStarted:
		return "started"
	case PhaseUpdating:
		return "updating"
	case PhaseCanceling:
		return "canceling"
	case PhaseFinishing:
		return "finishing"
	default:
		return "unknown"
	}
}
