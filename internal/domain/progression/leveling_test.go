package progression

import (
	"math"
	"testing"

	"github.com/phrazzld/questline/internal/domain"
)

func TestCalculateNodeLevel(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name              string
		totalXP           int
		baseRequired      int
		expectedLevel     int
		expectedRemaining int
		expectedRequired  int
	}{
		{
			name:              "zero XP stays level zero",
			totalXP:           0,
			baseRequired:      100,
			expectedLevel:     0,
			expectedRemaining: 0,
			expectedRequired:  100,
		},
		{
			name:              "exact base reaches level one",
			totalXP:           100,
			baseRequired:      100,
			expectedLevel:     1,
			expectedRemaining: 0,
			expectedRequired:  120, // 100 * 1.2
		},
		{
			name:              "level two consumes compounded requirements",
			totalXP:           250,
			baseRequired:      100,
			expectedLevel:     2,
			expectedRemaining: 30,  // 250 - 100 - 120
			expectedRequired:  144, // 120 * 1.2
		},
		{
			name:              "invalid base falls back to default",
			totalXP:           50,
			baseRequired:      0,
			expectedLevel:     0,
			expectedRemaining: 50,
			expectedRequired:  params.FallbackBaseRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, remaining, required := calculateNodeLevel(tc.totalXP, tc.baseRequired, params)

			if level != tc.expectedLevel {
				t.Errorf("Expected level %d, got %d", tc.expectedLevel, level)
			}
			if remaining != tc.expectedRemaining {
				t.Errorf("Expected remaining %d, got %d", tc.expectedRemaining, remaining)
			}
			if required != tc.expectedRequired {
				t.Errorf("Expected required %d, got %d", tc.expectedRequired, required)
			}
		})
	}
}

func TestCalculateNodeLevelTerminates(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	// An absurd XP total must stop at the level cap rather than loop.
	level, _, _ := calculateNodeLevel(math.MaxInt32, 100, params)
	if level != params.MaxNodeLevel {
		t.Errorf("Expected level capped at %d, got %d", params.MaxNodeLevel, level)
	}
}

func TestCalculateOverview(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	user := domain.NewUser()
	user.XPByDomain["academic"] = 250

	tree := []domain.SkillNode{
		{ID: "n1", Domains: []string{"academic"}, XPRequired: 100},
		{ID: "n2", Domains: []string{"physical"}, XPRequired: 100},
	}

	levels := calculateOverview(user, tree, params)

	if levels[0].Level != 2 {
		t.Errorf("Expected n1 at level 2, got %d", levels[0].Level)
	}
	if want := 30.0 / 144.0; math.Abs(levels[0].LevelProgress-want) > 1e-9 {
		t.Errorf("Expected n1 progress %.4f, got %.4f", want, levels[0].LevelProgress)
	}
	if levels[0].TotalXP != 250 {
		t.Errorf("Expected n1 total XP 250, got %d", levels[0].TotalXP)
	}

	if levels[1].Level != 0 || levels[1].LevelProgress != 0 {
		t.Errorf(
			"Expected untouched domain at level 0 progress 0, got level %d progress %.2f",
			levels[1].Level,
			levels[1].LevelProgress,
		)
	}
}
