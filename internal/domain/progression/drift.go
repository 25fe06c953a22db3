package progression

import (
	"sort"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/dates"
)

// Trend classifies the direction of self-rated consistency over time.
type Trend string

// Possible trend values
const (
	TrendInsufficientData Trend = "insufficient_data"
	TrendImproving        Trend = "improving"
	TrendStable           Trend = "stable"
	TrendDeclining        Trend = "declining"
)

// Risk is the drift-risk classification combining trend and activity.
type Risk string

// Possible risk values
const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// DateRange is an inclusive ISO-date filter.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DriftReport combines self-rated consistency with objective activity
// into a trend and a risk classification.
type DriftReport struct {
	AvgConsistency   float64 `json:"avg_consistency"`
	ActivityDays     int     `json:"activity_days"`
	TotalDays        int     `json:"total_days"`
	ActivityRatio    float64 `json:"activity_ratio"`
	ConsistencyTrend Trend   `json:"consistency_trend"`
	DriftRisk        Risk    `json:"drift_risk"`
}

// calculateDrift builds the drift report for the given activity log and
// reflection entries. When no explicit range is given the activity window
// is inferred from the log's own earliest and latest dates. Out-of-range
// consistency ratings are clamped to [0,100] rather than rejected.
func calculateDrift(
	user *domain.User,
	entries []domain.ReflectionEntry,
	filter *DateRange,
	params *Params,
) DriftReport {
	report := DriftReport{ConsistencyTrend: TrendInsufficientData}

	var log map[string][]string
	if user != nil {
		log = user.CompletedCardsByDate
	}

	window := resolveWindow(log, filter)

	inRange := filterEntries(entries, filter)
	if len(inRange) > 0 {
		sum := 0.0
		for _, e := range inRange {
			sum += clampRating(e.Consistency)
		}
		report.AvgConsistency = sum / float64(len(inRange))
	}

	if window != nil {
		report.TotalDays = dates.DaysBetweenInclusive(window.From, window.To)
		for date, ids := range log {
			if len(ids) == 0 {
				continue
			}
			if dates.Compare(date, window.From) >= 0 && dates.Compare(date, window.To) <= 0 {
				report.ActivityDays++
			}
		}
		if report.TotalDays > 0 {
			report.ActivityRatio = float64(report.ActivityDays) / float64(report.TotalDays)
		}
	}

	report.ConsistencyTrend = classifyTrend(inRange, params)
	report.DriftRisk = classifyRisk(report)

	return report
}

// resolveWindow picks the activity window: the explicit filter when
// given, otherwise the span of the activity log's own dates.
func resolveWindow(log map[string][]string, filter *DateRange) *DateRange {
	if filter != nil {
		return filter
	}

	window := DateRange{}
	for date, ids := range log {
		if len(ids) == 0 || !dates.Valid(date) {
			continue
		}
		if window.From == "" || dates.Compare(date, window.From) < 0 {
			window.From = date
		}
		if window.To == "" || dates.Compare(date, window.To) > 0 {
			window.To = date
		}
	}

	if window.From == "" {
		return nil
	}
	return &window
}

// filterEntries returns the reflection entries inside the filter range,
// all of them when no filter is given. Entries with malformed dates are
// dropped.
func filterEntries(entries []domain.ReflectionEntry, filter *DateRange) []domain.ReflectionEntry {
	out := make([]domain.ReflectionEntry, 0, len(entries))
	for _, e := range entries {
		if !dates.Valid(e.Date) {
			continue
		}
		if filter != nil {
			if dates.Compare(e.Date, filter.From) < 0 || dates.Compare(e.Date, filter.To) > 0 {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// classifyTrend splits the chronologically sorted entries into older and
// newer halves (the older half taking the extra entry on odd counts) and
// compares mean consistency. A difference beyond the configured delta in
// either direction classifies the trend; fewer entries than the minimum
// yield insufficient_data.
func classifyTrend(entries []domain.ReflectionEntry, params *Params) Trend {
	if len(entries) < params.TrendMinEntries {
		return TrendInsufficientData
	}

	sorted := make([]domain.ReflectionEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dates.Compare(sorted[i].Date, sorted[j].Date) < 0
	})

	mid := (len(sorted) + 1) / 2
	olderMean := meanRating(sorted[:mid])
	newerMean := meanRating(sorted[mid:])

	diff := newerMean - olderMean
	switch {
	case diff > params.TrendDelta:
		return TrendImproving
	case diff < -params.TrendDelta:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// classifyRisk applies the drift-risk rules in priority order; the first
// match wins.
func classifyRisk(report DriftReport) Risk {
	switch {
	case report.ConsistencyTrend == TrendDeclining &&
		(report.ActivityRatio < 0.4 || report.AvgConsistency < 60):
		return RiskHigh
	case report.ConsistencyTrend == TrendDeclining:
		return RiskMedium
	case report.ActivityRatio < 0.3 && report.AvgConsistency < 50:
		return RiskHigh
	case report.ActivityRatio > 0.6 && report.AvgConsistency > 70 &&
		(report.ConsistencyTrend == TrendImproving || report.ConsistencyTrend == TrendStable):
		return RiskLow
	default:
		return RiskMedium
	}
}

func meanRating(entries []domain.ReflectionEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += clampRating(e.Consistency)
	}
	return sum / float64(len(entries))
}

func clampRating(rating int) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 100 {
		return 100
	}
	return float64(rating)
}
