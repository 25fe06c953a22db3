package domain

import "errors"

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardTitleEmpty is returned when a card has no title.
	ErrCardTitleEmpty = errors.New("card title cannot be empty")

	// ErrCardDomainEmpty is returned when a card has no domain.
	ErrCardDomainEmpty = errors.New("card domain cannot be empty")

	// ErrCardXPNegative is returned when a card's XP reward is negative.
	ErrCardXPNegative = errors.New("card XP reward cannot be negative")
)

// Card is an atomic daily mission template. Completing a card grants its
// XP reward (scaled by the streak multiplier) to its primary domain.
type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Domain      string   `json:"domain"`
	XPReward    int      `json:"xp_reward"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Disabled    bool     `json:"disabled,omitempty"`
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == "" {
		return ErrCardIDEmpty
	}

	if c.Title == "" {
		return ErrCardTitleEmpty
	}

	if c.Domain == "" {
		return ErrCardDomainEmpty
	}

	if c.XPReward < 0 {
		return ErrCardXPNegative
	}

	return nil
}

// HasTag reports whether the card carries the given tag.
func (c *Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
