package progression

import (
	"errors"

	"github.com/phrazzld/questline/internal/domain"
)

// ErrRerollsExhausted is returned when the day's reroll allowance has
// already been consumed. It signals a normal termination state, not a
// failure: the caller's user snapshot is unchanged.
var ErrRerollsExhausted = errors.New("reroll allowance exhausted for the day")

// SelectionOptions configures a mission selection run.
type SelectionOptions struct {
	// Count overrides the desired mission count. When zero the user's
	// settings apply, then the configured default.
	Count int

	// Date is the ISO date the selection is for.
	Date string
}

// selectMissions picks today's mission card IDs from the pool using
// weighted random sampling without replacement. Domains with less XP are
// weighted higher (weight = 1/(domainXP+floor), the floor keeping every
// domain's weight positive) so weaker domains surface more often.
//
// The result never contains duplicates and never exceeds the requested
// count; a pool smaller than the count yields exactly the pool. The draw
// loop is bounded by the candidate count, so it terminates on any input.
func selectMissions(
	user *domain.User,
	pool []domain.Card,
	opts SelectionOptions,
	params *Params,
	rng Rand,
) []string {
	if user == nil || rng == nil {
		return []string{}
	}

	count := resolveMissionCount(user, opts, params)

	candidates := make([]domain.Card, 0, len(pool))
	for _, card := range pool {
		if !card.Disabled {
			candidates = append(candidates, card)
		}
	}

	picked := make([]string, 0, count)
	maxDraws := len(candidates)
	for draws := 0; len(picked) < count && len(candidates) > 0 && draws < maxDraws+1; draws++ {
		idx := drawWeighted(candidates, user.XPByDomain, params, rng)
		if idx < 0 {
			break
		}
		picked = append(picked, candidates[idx].ID)
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}

	return picked
}

// drawWeighted performs a single weight-proportional draw over the
// candidates using a cumulative-weight array and one uniform [0,total)
// sample. Returns -1 when no draw is possible.
func drawWeighted(
	candidates []domain.Card,
	xpByDomain map[string]int,
	params *Params,
	rng Rand,
) int {
	if len(candidates) == 0 {
		return -1
	}

	cumulative := make([]float64, len(candidates))
	total := 0.0
	for i, card := range candidates {
		xp := xpByDomain[card.Domain]
		if xp < 0 {
			xp = 0
		}
		total += 1.0 / (float64(xp) + params.SelectionWeightFloor)
		cumulative[i] = total
	}

	if total <= 0 {
		return rng.Intn(len(candidates))
	}

	r := rng.Float64() * total
	for i, c := range cumulative {
		if r < c {
			return i
		}
	}
	return len(candidates) - 1
}

// assignMissions returns the user's mission list for the day, selecting
// and storing a fresh set only when none exists yet. The returned user is
// the original snapshot when no selection was needed.
func assignMissions(
	user *domain.User,
	pool []domain.Card,
	opts SelectionOptions,
	params *Params,
	rng Rand,
) (*domain.User, []string) {
	if user == nil {
		return nil, []string{}
	}

	if missions, ok := user.MissionsByDate[opts.Date]; ok && len(missions) > 0 {
		return user, missions
	}

	missions := selectMissions(user, pool, opts, params, rng)
	next := user.Clone()
	if next.MissionsByDate == nil {
		next.MissionsByDate = make(map[string][]string)
	}
	next.MissionsByDate[opts.Date] = missions
	return next, missions
}

// rerollMissions replaces the day's stored mission list with a fresh
// random selection and consumes one reroll. When the day's streak-derived
// allowance is already spent it returns the user unchanged together with
// ErrRerollsExhausted.
func rerollMissions(
	user *domain.User,
	pool []domain.Card,
	opts SelectionOptions,
	params *Params,
	rng Rand,
) (*domain.User, error) {
	if user == nil {
		return nil, ErrRerollsExhausted
	}

	streak := calculateStreak(user.CompletedCardsByDate, opts.Date, params)
	allowance := rerollAllowanceForStreak(streak.Current, params)
	if user.RerollsByDate[opts.Date] >= allowance {
		return user, ErrRerollsExhausted
	}

	next := user.Clone()
	if next.MissionsByDate == nil {
		next.MissionsByDate = make(map[string][]string)
	}
	if next.RerollsByDate == nil {
		next.RerollsByDate = make(map[string]int)
	}
	next.MissionsByDate[opts.Date] = selectMissions(user, pool, opts, params, rng)
	next.RerollsByDate[opts.Date]++
	return next, nil
}

// resolveMissionCount resolves the desired mission count from the options
// override, then the user's settings, then the configured default.
func resolveMissionCount(user *domain.User, opts SelectionOptions, params *Params) int {
	if opts.Count > 0 {
		return opts.Count
	}
	if user.Settings.DailyMissionCount > 0 {
		return user.Settings.DailyMissionCount
	}
	return params.DefaultMissionCount
}
