package domain

import (
	"errors"

	"github.com/phrazzld/questline/internal/domain/dates"
)

// Phase-specific validation errors
var (
	// ErrPhaseIDEmpty is returned when a phase ID is empty.
	ErrPhaseIDEmpty = errors.New("phase ID cannot be empty")

	// ErrPhaseDatesInvalid is returned when a phase's date range is
	// malformed or its end precedes its start.
	ErrPhaseDatesInvalid = errors.New("phase date range is invalid")
)

// Phase is a fixed calendar-bounded stage of the long-term roadmap.
// StartDate and EndDate form an inclusive ISO-date range.
type Phase struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Goals     []string `json:"goals,omitempty"`
}

// Validate checks if the Phase has valid data.
// Returns an error if any field fails validation.
func (p *Phase) Validate() error {
	if p.ID == "" {
		return ErrPhaseIDEmpty
	}

	if !dates.Valid(p.StartDate) || !dates.Valid(p.EndDate) {
		return ErrPhaseDatesInvalid
	}

	if dates.Compare(p.EndDate, p.StartDate) < 0 {
		return ErrPhaseDatesInvalid
	}

	return nil
}

// Contains reports whether the given ISO date falls inside the phase's
// inclusive calendar range.
func (p *Phase) Contains(date string) bool {
	return dates.Compare(date, p.StartDate) >= 0 && dates.Compare(date, p.EndDate) <= 0
}
