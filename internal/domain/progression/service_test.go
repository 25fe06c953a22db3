package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/questline/internal/domain"
)

func TestNewDefaultService(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewDefaultService()
	require.NotNil(t, service)

	defaultService, ok := service.(*defaultService)
	require.True(t, ok, "Expected *defaultService type")
	require.NotNil(t, defaultService.params)
	require.NotNil(t, defaultService.rng)
}

func TestNewServiceDefaultsNilArguments(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewService(nil, nil)

	defaultService, ok := service.(*defaultService)
	require.True(t, ok, "Expected *defaultService type")
	require.NotNil(t, defaultService.params)
	require.NotNil(t, defaultService.rng)
}

func TestServiceCompleteCardRoundTrip(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewService(NewDefaultParams(), NewRand(42))
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	user := domain.NewUser()
	card := &domain.Card{ID: "c1", Title: "Read a chapter", Domain: "academic", XPReward: 40}
	tree := []domain.SkillNode{{ID: "n1", Domains: []string{"academic"}, XPRequired: 40}}

	next, gain := service.CompleteCard(user, card, tree, "2025-06-10", now)
	require.NotNil(t, gain)
	require.Equal(t, 40, next.XPByDomain["academic"])
	require.True(t, next.CompletedSkillNodes["n1"], "Expected node unlocked by the completion")

	stats := service.Streak(next, "2025-06-10")
	require.Equal(t, 1, stats.Current)
	require.Equal(t, "2025-06-10", stats.LastActiveDate)

	profile := service.Officer(next)
	require.Equal(t, 40, profile.TotalXP)
	require.Equal(t, "academic", profile.PrimaryDomain)
}

func TestServiceCompleteWorkout(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewDefaultService()
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	user := domain.NewUser()
	next := service.CompleteWorkout(user, "2025-06-10", []string{"pushups", "squats"}, now)
	require.NotSame(t, user, next)
	require.Equal(t, []string{"pushups", "squats"}, next.WorkoutByDate["2025-06-10"])

	// Re-marking the same exercises is a no-op.
	again := service.CompleteWorkout(next, "2025-06-10", []string{"pushups"}, now)
	require.Same(t, next, again)

	// Workout XP stays untouched; it is its own sub-progression.
	require.Equal(t, 0, next.TotalXP())

	stats := service.WorkoutStreak(next, "2025-06-10")
	require.Equal(t, 1, stats.Current)
}

func TestServiceXPHistory(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewDefaultService()

	user := domain.NewUser()
	user.CompletedCardsByDate["2025-06-09"] = []string{"c1", "c2"}
	user.CompletedCardsByDate["2025-06-10"] = []string{"c1"}

	pool := []domain.Card{
		{ID: "c1", Title: "Read", Domain: "academic", XPReward: 20},
		{ID: "c2", Title: "Run", Domain: "physical", XPReward: 25},
	}

	series := service.XPHistory(user, pool, "2025-06-10", 3)
	require.Len(t, series, 3)
	require.Equal(t, DayXP{Date: "2025-06-08", XP: 0}, series[0])
	require.Equal(t, DayXP{Date: "2025-06-09", XP: 45}, series[1])
	require.Equal(t, DayXP{Date: "2025-06-10", XP: 20}, series[2])
}
