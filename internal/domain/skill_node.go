package domain

import "errors"

// SkillNode-specific validation errors
var (
	// ErrSkillNodeIDEmpty is returned when a skill node ID is empty.
	ErrSkillNodeIDEmpty = errors.New("skill node ID cannot be empty")

	// ErrSkillNodeXPNegative is returned when a node's XP requirement is negative.
	ErrSkillNodeXPNegative = errors.New("skill node XP requirement cannot be negative")
)

// SkillNode is a tiered unlockable milestone in the skill tree. It is
// gated by prerequisite nodes and an XP threshold over its domain list.
// Tier is a display grouping only, never an unlock gate.
type SkillNode struct {
	ID            string   `json:"id"`
	Title         string   `json:"title,omitempty"`
	Tier          int      `json:"tier"`
	Domains       []string `json:"domains,omitempty"`
	XPRequired    int      `json:"xp_required"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Validate checks if the SkillNode has valid data.
// Returns an error if any field fails validation.
func (n *SkillNode) Validate() error {
	if n.ID == "" {
		return ErrSkillNodeIDEmpty
	}

	if n.XPRequired < 0 {
		return ErrSkillNodeXPNegative
	}

	return nil
}
