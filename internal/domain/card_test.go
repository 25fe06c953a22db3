package domain

import (
	"errors"
	"testing"
)

func TestCardValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		card     Card
		expected error
	}{
		{
			name:     "valid card",
			card:     Card{ID: "c1", Title: "Read a paper", Domain: "academic", XPReward: 25},
			expected: nil,
		},
		{
			name:     "empty ID",
			card:     Card{Title: "Read a paper", Domain: "academic"},
			expected: ErrCardIDEmpty,
		},
		{
			name:     "empty title",
			card:     Card{ID: "c1", Domain: "academic"},
			expected: ErrCardTitleEmpty,
		},
		{
			name:     "empty domain",
			card:     Card{ID: "c1", Title: "Read a paper"},
			expected: ErrCardDomainEmpty,
		},
		{
			name:     "negative XP",
			card:     Card{ID: "c1", Title: "Read a paper", Domain: "academic", XPReward: -1},
			expected: ErrCardXPNegative,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.card.Validate()
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected error %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestCardHasTag(t *testing.T) {
	t.Parallel() // Enable parallel execution
	card := Card{ID: "c1", Title: "Recon drill", Domain: "technical", Tags: []string{"osint", "drill"}}

	if !card.HasTag("osint") {
		t.Error("Expected card to have osint tag")
	}

	if card.HasTag("fitness") {
		t.Error("Did not expect fitness tag")
	}
}

func TestPhaseValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		phase    Phase
		expected error
	}{
		{
			name:     "valid phase",
			phase:    Phase{ID: "p1", Name: "Foundation", StartDate: "2025-01-01", EndDate: "2025-03-31"},
			expected: nil,
		},
		{
			name:     "empty ID",
			phase:    Phase{StartDate: "2025-01-01", EndDate: "2025-03-31"},
			expected: ErrPhaseIDEmpty,
		},
		{
			name:     "malformed start",
			phase:    Phase{ID: "p1", StartDate: "01/01/2025", EndDate: "2025-03-31"},
			expected: ErrPhaseDatesInvalid,
		},
		{
			name:     "end before start",
			phase:    Phase{ID: "p1", StartDate: "2025-03-31", EndDate: "2025-01-01"},
			expected: ErrPhaseDatesInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.phase.Validate()
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected error %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestPhaseContains(t *testing.T) {
	t.Parallel() // Enable parallel execution
	phase := Phase{ID: "p1", StartDate: "2025-01-01", EndDate: "2025-01-10"}

	if !phase.Contains("2025-01-01") {
		t.Error("Expected start date to be inside the phase")
	}

	if !phase.Contains("2025-01-10") {
		t.Error("Expected end date to be inside the phase")
	}

	if phase.Contains("2024-12-31") {
		t.Error("Did not expect date before start to be inside the phase")
	}

	if phase.Contains("2025-01-11") {
		t.Error("Did not expect date after end to be inside the phase")
	}
}
