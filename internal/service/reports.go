package service

import (
	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/progression"
)

// MissionBoard is the day's mission state as presented to the caller:
// the resolved cards plus how many rerolls are still available.
type MissionBoard struct {
	Date             string
	Cards            []domain.Card
	RerollsRemaining int
}

// StatusReport aggregates the read-only progression summary: streaks,
// multiplier, badges, officer rank and the trailing XP series.
type StatusReport struct {
	Date             string
	TotalXP          int
	Streak           progression.StreakStats
	Multiplier       float64
	RerollsRemaining int
	Badges           []string
	Officer          progression.OfficerProfile
	WorkoutStreak    progression.StreakStats
	LastGain         *domain.XPGain
	XPHistory        []progression.DayXP
}

// TimelineReport pairs the per-phase views with the phase the target
// date falls in (nil before the plan starts).
type TimelineReport struct {
	Date    string
	Phases  []progression.PhaseView
	Current *domain.Phase
}
