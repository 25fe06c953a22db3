package progression

import (
	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/dates"
)

// DayXP is one day's earned XP in the history series.
type DayXP struct {
	Date string `json:"date"`
	XP   int    `json:"xp"`
}

// calculateXPHistory derives a per-day XP series for the trailing window
// ending at today. Values are the base rewards of the day's completed
// cards; the streak multiplier in effect at completion time is not
// recorded in the log, so the series understates multiplied days. Display
// only.
func calculateXPHistory(
	user *domain.User,
	pool []domain.Card,
	today string,
	days int,
) []DayXP {
	if days <= 0 || !dates.Valid(today) {
		return []DayXP{}
	}

	rewards := make(map[string]int, len(pool))
	for _, card := range pool {
		rewards[card.ID] = card.XPReward
	}

	var log map[string][]string
	if user != nil {
		log = user.CompletedCardsByDate
	}

	series := make([]DayXP, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		date := dates.AddDays(today, -offset)
		day := DayXP{Date: date}
		for _, id := range log[date] {
			day.XP += rewards[id]
		}
		series = append(series, day)
	}

	return series
}
