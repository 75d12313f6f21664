package navigator

import (
	"projectpager/internal/domain"
)

// NextPhase folds one gesture sample into the interactive-dismissal machine.
// Conditions are evaluated in order; the first match wins. There is no
// transition back to none after finishing/canceling: a fresh gesture either
// re-enters started (Active is false by then) or rides the content-offset
// branch, and that behavior is relied on by the host.
func NextPhase(phase domain.TransitionPhase, sample domain.PanningData) domain.TransitionPhase {
	switch {
	case sample.ContentOffset.Y > 0:
		if phase == domain.PhaseNone {
			return domain.PhaseNone
		}
		return domain.PhaseCanceling

	case sample.IsDragging && sample.Translation.Y > 0 && !phase.Active():
		return domain.PhaseStarted

	case sample.IsDragging && sample.Translation.Y > 0 && phase.Active():
		return domain.PhaseUpdating

	case sample.IsDragging && sample.Translation.Y < 0 && phase.Active():
		return domain.PhaseCanceling

	case !sample.IsDragging && sample.Translation.Y > 0 && phase.Active():
		if sample.Velocity.Y > 0 {
			return domain.PhaseFinishing
		}
		return domain.PhaseCanceling

	default:
		return phase
	}
}
