package progression

import (
	"sort"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/dates"
)

// TimeStatus places a phase relative to the target date.
type TimeStatus string

// Possible time status values
const (
	TimeStatusPast    TimeStatus = "past"
	TimeStatusCurrent TimeStatus = "current"
	TimeStatusFuture  TimeStatus = "future"
)

// PhaseView is one phase's temporal status in the timeline view.
type PhaseView struct {
	Phase      domain.Phase `json:"phase"`
	TimeStatus TimeStatus   `json:"time_status"`
	Progress   float64      `json:"progress"`
}

// sortedPhases returns the phases ordered by start date. The input is
// assumed externally consistent but sorted defensively regardless.
func sortedPhases(phases []domain.Phase) []domain.Phase {
	out := make([]domain.Phase, len(phases))
	copy(out, phases)
	sort.SliceStable(out, func(i, j int) bool {
		return dates.Compare(out[i].StartDate, out[j].StartDate) < 0
	})
	return out
}

// calculateTimeline computes temporal status and progress for every
// phase at the target date. Progress through a current phase is the
// elapsed fraction of the raw day span (end minus start); a zero-length
// phase containing the target reports progress 1.
func calculateTimeline(phases []domain.Phase, target string) []PhaseView {
	views := make([]PhaseView, 0, len(phases))

	for _, phase := range sortedPhases(phases) {
		view := PhaseView{Phase: phase}

		switch {
		case dates.Compare(target, phase.StartDate) < 0:
			view.TimeStatus = TimeStatusFuture
			view.Progress = 0
		case dates.Compare(target, phase.EndDate) > 0:
			view.TimeStatus = TimeStatusPast
			view.Progress = 1
		default:
			view.TimeStatus = TimeStatusCurrent
			total := dates.DaysBetween(phase.StartDate, phase.EndDate)
			if total <= 0 {
				view.Progress = 1
			} else {
				elapsed := dates.DaysBetween(phase.StartDate, target)
				view.Progress = clamp01(float64(elapsed) / float64(total))
			}
		}

		views = append(views, view)
	}

	return views
}

// currentPhase finds the phase containing the target date. When the
// target is past a phase's end that phase becomes a provisional "last
// known" answer, overwritten by any later phase the target is also past,
// so a date after every phase returns the latest-ending one. A date
// before every phase's start returns nil.
func currentPhase(phases []domain.Phase, target string) *domain.Phase {
	var last *domain.Phase

	for _, phase := range sortedPhases(phases) {
		if phase.Contains(target) {
			p := phase
			return &p
		}
		if dates.Compare(target, phase.EndDate) > 0 {
			p := phase
			last = &p
		}
	}

	return last
}
