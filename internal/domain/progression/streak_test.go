package progression

import (
	"reflect"
	"testing"
)

func activityLog(dates ...string) map[string][]string {
	log := make(map[string][]string, len(dates))
	for _, d := range dates {
		log[d] = []string{"card-1"}
	}
	return log
}

func TestCalculateStreak(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name            string
		log             map[string][]string
		today           string
		expectedCurrent int
		expectedBest    int
		expectedLast    string
	}{
		{
			name:            "empty log",
			log:             map[string][]string{},
			today:           "2025-06-10",
			expectedCurrent: 0,
			expectedBest:    0,
			expectedLast:    "",
		},
		{
			name:            "inactive today means zero current streak",
			log:             activityLog("2025-06-08", "2025-06-09"),
			today:           "2025-06-10",
			expectedCurrent: 0,
			expectedBest:    2,
			expectedLast:    "2025-06-09",
		},
		{
			name:            "run ending today",
			log:             activityLog("2025-06-08", "2025-06-09", "2025-06-10"),
			today:           "2025-06-10",
			expectedCurrent: 3,
			expectedBest:    3,
			expectedLast:    "2025-06-10",
		},
		{
			name: "best streak comes from an older longer run",
			log: activityLog(
				"2025-05-01", "2025-05-02", "2025-05-03", "2025-05-04", "2025-05-05",
				"2025-06-09", "2025-06-10",
			),
			today:           "2025-06-10",
			expectedCurrent: 2,
			expectedBest:    5,
			expectedLast:    "2025-06-10",
		},
		{
			name:            "empty completion list does not count as active",
			log:             map[string][]string{"2025-06-10": {}},
			today:           "2025-06-10",
			expectedCurrent: 0,
			expectedBest:    0,
			expectedLast:    "",
		},
		{
			name:            "run crossing a month boundary",
			log:             activityLog("2025-05-30", "2025-05-31", "2025-06-01"),
			today:           "2025-06-01",
			expectedCurrent: 3,
			expectedBest:    3,
			expectedLast:    "2025-06-01",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := calculateStreak(tc.log, tc.today, params)

			if stats.Current != tc.expectedCurrent {
				t.Errorf("Expected current streak %d, got %d", tc.expectedCurrent, stats.Current)
			}
			if stats.Best != tc.expectedBest {
				t.Errorf("Expected best streak %d, got %d", tc.expectedBest, stats.Best)
			}
			if stats.LastActiveDate != tc.expectedLast {
				t.Errorf("Expected last active %q, got %q", tc.expectedLast, stats.LastActiveDate)
			}
			if stats.Best < stats.Current {
				t.Errorf("Best streak %d must never be below current %d", stats.Best, stats.Current)
			}
		})
	}
}

func TestMultiplierForStreak(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	// Boundary-inclusive on the lower edge of each band.
	testCases := []struct {
		streak   int
		expected float64
	}{
		{0, 1.0},
		{2, 1.0},
		{3, 1.1},
		{6, 1.1},
		{7, 1.2},
		{13, 1.2},
		{14, 1.3},
		{29, 1.3},
		{30, 1.5},
		{365, 1.5},
	}

	for _, tc := range testCases {
		if got := multiplierForStreak(tc.streak, params); got != tc.expected {
			t.Errorf("Streak %d: expected multiplier %.1f, got %.1f", tc.streak, tc.expected, got)
		}
	}
}

func TestRerollAllowanceForStreak(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		streak   int
		expected int
	}{
		{0, 0},
		{6, 0},
		{7, 1},
		{13, 1},
		{14, 2},
		{100, 2},
	}

	for _, tc := range testCases {
		if got := rerollAllowanceForStreak(tc.streak, params); got != tc.expected {
			t.Errorf("Streak %d: expected allowance %d, got %d", tc.streak, tc.expected, got)
		}
	}
}

func TestBadgesForStreak(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		stats    StreakStats
		expected []string
	}{
		{
			name:     "no streak earns nothing",
			stats:    StreakStats{},
			expected: []string{},
		},
		{
			name:     "best of three",
			stats:    StreakStats{Current: 1, Best: 3},
			expected: []string{"bronze_streak"},
		},
		{
			name:     "week best with active week",
			stats:    StreakStats{Current: 7, Best: 7},
			expected: []string{"bronze_streak", "silver_streak", "hot_streak"},
		},
		{
			name:     "month best after a lapse",
			stats:    StreakStats{Current: 2, Best: 31},
			expected: []string{"bronze_streak", "silver_streak", "gold_streak"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := badgesForStreak(tc.stats, params)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected badges %v, got %v", tc.expected, got)
			}
		})
	}
}
