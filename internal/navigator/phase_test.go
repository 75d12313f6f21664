package navigator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"projectpager/internal/domain"
)

func drag(translationY, velocityY float64) domain.PanningData {
	return domain.PanningData{
		Translation: domain.Point{Y: translationY},
		Velocity:    domain.Point{Y: velocityY},
		IsDragging:  true,
	}
}

func release(translationY, velocityY float64) domain.PanningData {
	return domain.PanningData{
		Translation: domain.Point{Y: translationY},
		Velocity:    domain.Point{Y: velocityY},
	}
}

func scrolled(offsetY float64) domain.PanningData {
	return domain.PanningData{
		ContentOffset: domain.Point{Y: offsetY},
	}
}

func TestNextPhaseTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phase  domain.TransitionPhase
		sample domain.PanningData
		want   domain.TransitionPhase
	}{
		{"scrolled content stays none", domain.PhaseNone, scrolled(24), domain.PhaseNone},
		{"scrolled content cancels active drag", domain.PhaseUpdating, scrolled(24), domain.PhaseCanceling},
		{"scrolled content wins over drag data", domain.PhaseStarted,
			domain.PanningData{ContentOffset: domain.Point{Y: 1}, Translation: domain.Point{Y: 5}, IsDragging: true},
			domain.PhaseCanceling},
		{"downward drag starts while inactive", domain.PhaseNone, drag(5, 1), domain.PhaseStarted},
		{"downward drag starts after cancel", domain.PhaseCanceling, drag(5, 1), domain.PhaseStarted},
		{"downward drag updates while started", domain.PhaseStarted, drag(10, 1), domain.PhaseUpdating},
		{"downward drag keeps updating", domain.PhaseUpdating, drag(15, 1), domain.PhaseUpdating},
		{"upward drag cancels while active", domain.PhaseUpdating, drag(-5, -1), domain.PhaseCanceling},
		{"upward drag ignored while inactive", domain.PhaseNone, drag(-5, -1), domain.PhaseNone},
		{"release with downward velocity finishes", domain.PhaseUpdating, release(5, 3), domain.PhaseFinishing},
		{"release with upward velocity cancels", domain.PhaseUpdating, release(5, -1), domain.PhaseCanceling},
		{"release with zero velocity cancels", domain.PhaseStarted, release(5, 0), domain.PhaseCanceling},
		{"release while inactive is ignored", domain.PhaseCanceling, release(5, 3), domain.PhaseCanceling},
		{"idle sample leaves phase unchanged", domain.PhaseFinishing, release(0, 0), domain.PhaseFinishing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPhase(tt.phase, tt.sample)
			require.Equal(t, tt.want, got)
		})
	}
}

// There is deliberately no transition back to none: a stale finishing phase is
// only left via the scrolled-content branch (to canceling) or a fresh started
// detection. This pins that behavior.
func TestNextPhaseHasNoResetToNone(t *testing.T) {
	t.Parallel()

	require.Equal(t, domain.PhaseStarted, NextPhase(domain.PhaseFinishing, drag(5, 1)),
		"a new downward drag after finishing should re-enter started")
	require.Equal(t, domain.PhaseCanceling, NextPhase(domain.PhaseFinishing, scrolled(10)),
		"scrolled content after finishing should move to canceling, not none")
	require.Equal(t, domain.PhaseStarted, NextPhase(domain.PhaseCanceling, drag(5, 1)),
		"a new downward drag after canceling should re-enter started")
}
