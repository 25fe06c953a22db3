package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	// ErrUserIDEmpty is returned when a user ID is empty or nil.
	ErrUserIDEmpty = errors.New("user ID cannot be empty")
)

// DefaultDailyMissionCount is the fallback mission count when neither the
// selection options nor the user's settings specify one.
const DefaultDailyMissionCount = 3

// Settings holds the user's passive configuration. It carries no logic;
// engines only read from it.
type Settings struct {
	DailyMissionCount int    `json:"daily_mission_count,omitempty"`
	Theme             string `json:"theme,omitempty"`
	XPChartDays       int    `json:"xp_chart_days,omitempty"`
	Soundtrack        bool   `json:"soundtrack,omitempty"`
}

// XPGain is the most recent XP transaction, kept for display only. It is
// advisory and never read back by the engines.
type XPGain struct {
	CardID     string    `json:"card_id"`
	Domain     string    `json:"domain"`
	Amount     int       `json:"amount"`
	Multiplier float64   `json:"multiplier"`
	Date       string    `json:"date"`
	RecordedAt time.Time `json:"recorded_at"`
}

// User is the sole mutable aggregate root: all progression state hangs off
// it. Engines treat a User as an immutable snapshot, cloning it before any
// change and returning the new copy; the caller owns persistence.
type User struct {
	ID uuid.UUID `json:"id"`

	// XPByDomain maps domain name to accumulated XP. Buckets are created
	// lazily on first gain and are monotonically non-decreasing under
	// normal play.
	XPByDomain map[string]int `json:"xp_by_domain"`

	// CompletedCardsByDate maps ISO date to the ordered card IDs completed
	// that day. A card ID appears at most once per date bucket.
	CompletedCardsByDate map[string][]string `json:"completed_cards_by_date"`

	// CompletedSkillNodes is the set of permanently unlocked node IDs.
	// Monotonic: normal play only ever adds to it.
	CompletedSkillNodes map[string]bool `json:"completed_skill_nodes"`

	// MissionsByDate stores the selected mission card IDs per day. Reroll
	// replaces the current day's list.
	MissionsByDate map[string][]string `json:"missions_by_date"`

	// RerollsByDate counts reroll actions consumed per day, bounded above
	// by the day's streak-derived allowance.
	RerollsByDate map[string]int `json:"rerolls_by_date"`

	Reflections []ReflectionEntry `json:"reflections,omitempty"`

	WorkoutRoutine []WorkoutExercise `json:"workout_routine,omitempty"`

	// WorkoutByDate maps ISO date to the exercise names completed that
	// day, tracked independently of XP.
	WorkoutByDate map[string][]string `json:"workout_by_date,omitempty"`

	Settings Settings `json:"settings"`

	LastXPGain *XPGain `json:"last_xp_gain,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates the template user with empty progression state and
// default settings. Used on first run when no stored profile exists.
func NewUser() *User {
	now := time.Now().UTC()
	return &User{
		ID:                   uuid.New(),
		XPByDomain:           make(map[string]int),
		CompletedCardsByDate: make(map[string][]string),
		CompletedSkillNodes:  make(map[string]bool),
		MissionsByDate:       make(map[string][]string),
		RerollsByDate:        make(map[string]int),
		Settings: Settings{
			DailyMissionCount: DefaultDailyMissionCount,
			XPChartDays:       14,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrUserIDEmpty
	}

	return nil
}

// Clone returns a deep copy of the user. Engines clone before mutating so
// the caller's snapshot is never changed underneath it.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u

	clone.XPByDomain = cloneIntMap(u.XPByDomain)
	clone.CompletedCardsByDate = cloneSliceMap(u.CompletedCardsByDate)
	clone.CompletedSkillNodes = cloneBoolMap(u.CompletedSkillNodes)
	clone.MissionsByDate = cloneSliceMap(u.MissionsByDate)
	clone.RerollsByDate = cloneIntMap(u.RerollsByDate)
	clone.WorkoutByDate = cloneSliceMap(u.WorkoutByDate)

	if u.Reflections != nil {
		clone.Reflections = make([]ReflectionEntry, len(u.Reflections))
		copy(clone.Reflections, u.Reflections)
	}

	if u.WorkoutRoutine != nil {
		clone.WorkoutRoutine = make([]WorkoutExercise, len(u.WorkoutRoutine))
		copy(clone.WorkoutRoutine, u.WorkoutRoutine)
	}

	if u.LastXPGain != nil {
		gain := *u.LastXPGain
		clone.LastXPGain = &gain
	}

	return &clone
}

// TotalXP sums the user's XP across all domains.
func (u *User) TotalXP() int {
	total := 0
	for _, xp := range u.XPByDomain {
		total += xp
	}
	return total
}

// CompletedCardOn reports whether the card ID is already in the given
// day's completion bucket.
func (u *User) CompletedCardOn(date, cardID string) bool {
	for _, id := range u.CompletedCardsByDate[date] {
		if id == cardID {
			return true
		}
	}
	return false
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneSliceMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		vs := make([]string, len(v))
		copy(vs, v)
		out[k] = vs
	}
	return out
}
