package progression

import (
	"math"

	"github.com/phrazzld/questline/internal/domain"
)

// NodeLevel is the per-node output of the infinite-leveling engine: an
// unbounded level curve over the node's accumulated domain XP.
type NodeLevel struct {
	NodeID          string  `json:"node_id"`
	Level           int     `json:"level"`
	LevelProgress   float64 `json:"level_progress"`
	LevelRequiredXP int     `json:"level_required_xp"`
	TotalXP         int     `json:"total_xp"`
}

// calculateNodeLevel runs the leveling curve for a single XP total.
// Starting at level 0 with the base requirement, each level consumes its
// requirement from the remaining XP and grows the next requirement by the
// compounding growth factor (rounded). The level cap guarantees
// termination even for absurd XP totals.
func calculateNodeLevel(totalXP, baseRequired int, params *Params) (level, remaining, required int) {
	if baseRequired <= 0 {
		baseRequired = params.FallbackBaseRequired
	}
	if totalXP < 0 {
		totalXP = 0
	}

	required = baseRequired
	remaining = totalXP
	for level < params.MaxNodeLevel && required > 0 && remaining >= required {
		remaining -= required
		level++
		required = int(math.Round(float64(required) * params.LevelGrowthFactor))
	}

	return level, remaining, required
}

// calculateOverview computes the infinite-leveling view for every node in
// the tree from the user's domain XP.
func calculateOverview(user *domain.User, tree []domain.SkillNode, params *Params) []NodeLevel {
	levels := make([]NodeLevel, 0, len(tree))

	var xpByDomain map[string]int
	if user != nil {
		xpByDomain = user.XPByDomain
	}

	for _, node := range tree {
		totalXP := nodeDomainXP(xpByDomain, node)
		level, remaining, required := calculateNodeLevel(totalXP, node.XPRequired, params)

		progress := 0.0
		if required > 0 {
			progress = clamp01(float64(remaining) / float64(required))
		}

		levels = append(levels, NodeLevel{
			NodeID:          node.ID,
			Level:           level,
			LevelProgress:   progress,
			LevelRequiredXP: required,
			TotalXP:         totalXP,
		})
	}

	return levels
}
