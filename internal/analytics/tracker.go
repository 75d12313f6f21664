package analytics

import (
	"log"

	"projectpager/internal/domain"
)

// Swipe directions and gesture types reported to trackers.
const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
	GestureSwipe      = "swipe"
)

// Tracker receives navigation analytics. Implementations must not block; the
// navigator calls them from the host's event-dispatch goroutine.
type Tracker interface {
	TrackSwipedProject(project domain.Project, refTag domain.RefTag, direction string)
	TrackClosedProjectPage(project domain.Project, refTag domain.RefTag, gesture string)
}

// NopTracker discards all events.
type NopTracker struct{}

func (NopTracker) TrackSwipedProject(domain.Project, domain.RefTag, string)     {}
func (NopTracker) TrackClosedProjectPage(domain.Project, domain.RefTag, string) {}

// LogTracker writes events to the standard logger.
type LogTracker struct{}

func (LogTracker) TrackSwipedProject(project domain.Project, refTag domain.RefTag, direction string) {
	log.Printf("analytics: swiped project slug=%s ref_tag=%s direction=%s", project.Slug, refTag, direction)
}

func (LogTracker) TrackClosedProjectPage(project domain.Project, refTag domain.RefTag, gesture string) {
	log.Printf("analytics: closed project page slug=%s ref_tag=%s gesture=%s", project.Slug, refTag, gesture)
}
