package progression

import (
	"sort"

	"github.com/phrazzld/questline/internal/domain/dates"
)

// StreakStats summarizes the user's consecutive-day activity.
type StreakStats struct {
	// Current is the number of consecutive active days ending at the
	// reference date. Zero when the reference date itself is inactive.
	Current int `json:"current"`

	// Best is the length of the longest run of consecutive active days
	// anywhere in the log. Always >= Current.
	Best int `json:"best"`

	// LastActiveDate is the most recent active ISO date, empty when the
	// log has no activity at all.
	LastActiveDate string `json:"last_active_date"`
}

// calculateStreak derives streak statistics from a day-to-completed-IDs
// log. A day counts as active iff its completion list is non-empty.
//
// The current streak walks backward day by day from today while each day
// is active; the walk is capped at params.MaxStreakScan so a degenerate
// log can never loop unbounded. The best streak scans every active date
// for maximal runs of consecutive days, which needs the full set of
// active dates rather than a recent window.
func calculateStreak(completedByDate map[string][]string, today string, params *Params) StreakStats {
	active := make(map[string]bool, len(completedByDate))
	activeDates := make([]string, 0, len(completedByDate))
	for date, ids := range completedByDate {
		if len(ids) > 0 && dates.Valid(date) {
			active[date] = true
			activeDates = append(activeDates, date)
		}
	}

	stats := StreakStats{}

	// Current streak: walk backward from today.
	day := today
	for i := 0; i < params.MaxStreakScan && active[day]; i++ {
		stats.Current++
		day = dates.AddDays(day, -1)
	}

	// Best streak: longest run of consecutive active dates.
	sort.Strings(activeDates)
	run := 0
	for i, date := range activeDates {
		if i > 0 && dates.DaysBetween(activeDates[i-1], date) == 1 {
			run++
		} else {
			run = 1
		}
		if run > stats.Best {
			stats.Best = run
		}
	}

	if len(activeDates) > 0 {
		stats.LastActiveDate = activeDates[len(activeDates)-1]
	}

	// The backward walk from today is itself a run the scan above has
	// already seen, except when today's run is truncated by the scan cap.
	if stats.Current > stats.Best {
		stats.Best = stats.Current
	}

	return stats
}

// multiplierForStreak returns the XP multiplier for a current streak
// length. Pure step-function lookup over the configured bands, no
// interpolation.
func multiplierForStreak(current int, params *Params) float64 {
	for _, band := range params.MultiplierBands {
		if current >= band.MinStreak {
			return band.Multiplier
		}
	}
	return 1.0
}

// rerollAllowanceForStreak returns how many rerolls the day's streak
// grants.
func rerollAllowanceForStreak(current int, params *Params) int {
	for _, band := range params.RerollBands {
		if current >= band.MinStreak {
			return band.Allowance
		}
	}
	return 0
}

// badgesForStreak returns the earned badge labels in rule order. Badges
// are purely additive: reaching a threshold earns the label, and nothing
// here ever removes one.
func badgesForStreak(stats StreakStats, params *Params) []string {
	badges := make([]string, 0, len(params.BadgeRules))
	for _, rule := range params.BadgeRules {
		if rule.MinBest > 0 && stats.Best < rule.MinBest {
			continue
		}
		if rule.MinCurrent > 0 && stats.Current < rule.MinCurrent {
			continue
		}
		if rule.MinBest == 0 && rule.MinCurrent == 0 {
			continue
		}
		badges = append(badges, rule.Label)
	}
	return badges
}
