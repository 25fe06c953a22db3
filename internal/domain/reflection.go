package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/questline/internal/domain/dates"
)

// Reflection-specific validation errors
var (
	// ErrReflectionIDEmpty is returned when a reflection entry ID is empty or nil.
	ErrReflectionIDEmpty = errors.New("reflection entry ID cannot be empty")

	// ErrReflectionDateInvalid is returned when a reflection entry's date
	// is not a well-formed ISO date.
	ErrReflectionDateInvalid = errors.New("reflection entry date is invalid")
)

// ReflectionEntry is a self-reported consistency check-in for one day.
// Consistency is a 0-100 self-rating; out-of-range values are clamped by
// the drift engine rather than rejected here, so restored legacy data
// never fails to load.
type ReflectionEntry struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Consistency int       `json:"consistency"`
	Mood        string    `json:"mood,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Insights    []string  `json:"insights,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewReflectionEntry creates a reflection entry for the given day.
// It generates a new UUID for the entry ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewReflectionEntry(date string, consistency int, mood, summary string) (*ReflectionEntry, error) {
	entry := &ReflectionEntry{
		ID:          uuid.New(),
		Date:        date,
		Consistency: consistency,
		Mood:        mood,
		Summary:     summary,
		CreatedAt:   time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the ReflectionEntry has valid data.
// Returns an error if any field fails validation.
func (e *ReflectionEntry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrReflectionIDEmpty
	}

	if !dates.Valid(e.Date) {
		return ErrReflectionDateInvalid
	}

	return nil
}

// ReflectionTemplate is a static prompt shown when starting a new
// reflection. Templates are content data, loaded alongside cards and the
// skill tree.
type ReflectionTemplate struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Prompts []string `json:"prompts"`
}
