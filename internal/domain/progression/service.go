package progression

import (
	"time"

	"github.com/phrazzld/questline/internal/domain"
)

// Service defines the interface for the progression engines. Every method
// is a pure, bounded computation over the snapshots it receives: inputs
// are never mutated, state changes come back as new snapshots, and
// missing or malformed data degrades to neutral results instead of
// failing. The reference date is always an explicit parameter so callers
// own the clock.
type Service interface {
	// Streak derives current/best streak stats from the completion log.
	Streak(user *domain.User, today string) StreakStats

	// Multiplier returns the XP multiplier for a current streak length.
	Multiplier(currentStreak int) float64

	// RerollAllowance returns the day's reroll budget for a streak length.
	RerollAllowance(currentStreak int) int

	// Badges returns the earned badge labels in stable order.
	Badges(stats StreakStats) []string

	// Missions returns the day's mission list, selecting and storing a
	// fresh set when none exists yet.
	Missions(user *domain.User, pool []domain.Card, opts SelectionOptions) (*domain.User, []string)

	// Reroll replaces the day's missions with a fresh draw and consumes a
	// reroll. Returns ErrRerollsExhausted (user unchanged) when the day's
	// allowance is spent.
	Reroll(user *domain.User, pool []domain.Card, opts SelectionOptions) (*domain.User, error)

	// CompleteCard records a card completion, credits streak-scaled XP
	// and re-evaluates skill unlocks. Idempotent per card per day: the
	// gain is nil and the snapshot unchanged on a repeat.
	CompleteCard(
		user *domain.User,
		card *domain.Card,
		tree []domain.SkillNode,
		date string,
		now time.Time,
	) (*domain.User, *domain.XPGain)

	// TreeView computes lock status and progress per skill node.
	TreeView(user *domain.User, tree []domain.SkillNode) []NodeView

	// Overview computes the infinite-leveling curve per skill node.
	Overview(user *domain.User, tree []domain.SkillNode) []NodeLevel

	// Officer aggregates all domain XP into the overall rank profile.
	Officer(user *domain.User) OfficerProfile

	// Timeline computes each phase's temporal status at the target date.
	Timeline(phases []domain.Phase, target string) []PhaseView

	// CurrentPhase finds the phase containing the target date, with the
	// latest-ended phase as fallback once all phases are over.
	CurrentPhase(phases []domain.Phase, target string) *domain.Phase

	// Drift combines reflections and the activity log into a drift-risk
	// report. A nil filter infers the window from the log itself.
	Drift(user *domain.User, entries []domain.ReflectionEntry, filter *DateRange) DriftReport

	// XPHistory derives the trailing per-day XP series for display.
	XPHistory(user *domain.User, pool []domain.Card, today string, days int) []DayXP

	// CompleteWorkout records a day's finished exercises.
	CompleteWorkout(user *domain.User, date string, exercises []string, now time.Time) *domain.User

	// WorkoutStreak derives streak stats from the workout log.
	WorkoutStreak(user *domain.User, today string) StreakStats
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
	rng    Rand
}

// NewDefaultService creates a progression service with default parameters
// and a time-seeded random source.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
		rng:    NewRand(time.Now().UnixNano()),
	}
}

// NewService creates a progression service with custom parameters and
// random source. Nil arguments fall back to the defaults.
func NewService(params *Params, rng Rand) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	return &defaultService{params: params, rng: rng}
}

func (s *defaultService) Streak(user *domain.User, today string) StreakStats {
	if user == nil {
		return StreakStats{}
	}
	return calculateStreak(user.CompletedCardsByDate, today, s.params)
}

func (s *defaultService) Multiplier(currentStreak int) float64 {
	return multiplierForStreak(currentStreak, s.params)
}

func (s *defaultService) RerollAllowance(currentStreak int) int {
	return rerollAllowanceForStreak(currentStreak, s.params)
}

func (s *defaultService) Badges(stats StreakStats) []string {
	return badgesForStreak(stats, s.params)
}

func (s *defaultService) Missions(
	user *domain.User,
	pool []domain.Card,
	opts SelectionOptions,
) (*domain.User, []string) {
	return assignMissions(user, pool, opts, s.params, s.rng)
}

func (s *defaultService) Reroll(
	user *domain.User,
	pool []domain.Card,
	opts SelectionOptions,
) (*domain.User, error) {
	return rerollMissions(user, pool, opts, s.params, s.rng)
}

func (s *defaultService) CompleteCard(
	user *domain.User,
	card *domain.Card,
	tree []domain.SkillNode,
	date string,
	now time.Time,
) (*domain.User, *domain.XPGain) {
	return applyCardCompletion(user, card, tree, date, now, s.params)
}

func (s *defaultService) TreeView(user *domain.User, tree []domain.SkillNode) []NodeView {
	return evaluateTreeView(user, tree)
}

func (s *defaultService) Overview(user *domain.User, tree []domain.SkillNode) []NodeLevel {
	return calculateOverview(user, tree, s.params)
}

func (s *defaultService) Officer(user *domain.User) OfficerProfile {
	return calculateOfficerProfile(user, s.params)
}

func (s *defaultService) Timeline(phases []domain.Phase, target string) []PhaseView {
	return calculateTimeline(phases, target)
}

func (s *defaultService) CurrentPhase(phases []domain.Phase, target string) *domain.Phase {
	return currentPhase(phases, target)
}

func (s *defaultService) Drift(
	user *domain.User,
	entries []domain.ReflectionEntry,
	filter *DateRange,
) DriftReport {
	return calculateDrift(user, entries, filter, s.params)
}

func (s *defaultService) XPHistory(
	user *domain.User,
	pool []domain.Card,
	today string,
	days int,
) []DayXP {
	return calculateXPHistory(user, pool, today, days)
}

func (s *defaultService) CompleteWorkout(
	user *domain.User,
	date string,
	exercises []string,
	now time.Time,
) *domain.User {
	return completeWorkout(user, date, exercises, now)
}

func (s *defaultService) WorkoutStreak(user *domain.User, today string) StreakStats {
	if user == nil {
		return StreakStats{}
	}
	return calculateStreak(user.WorkoutByDate, today, s.params)
}
