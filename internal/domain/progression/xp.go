package progression

import (
	"math"
	"time"

	"github.com/phrazzld/questline/internal/domain"
	"github.com/phrazzld/questline/internal/domain/dates"
)

// applyCardCompletion records a completed card for the given day, credits
// streak-scaled XP to the card's domain and re-evaluates skill-node
// unlocks across the whole tree. It returns a new user snapshot and the
// XP transaction record.
//
// The operation is idempotent per card per day: when the card ID is
// already in the day's completion bucket the original snapshot is
// returned unchanged with a nil gain, so a repeated call can never
// double-credit XP.
//
// Missing inputs (nil user or card, malformed date) yield the input
// snapshot untouched rather than an error; the engine degrades to a
// no-op per the module's error-absorption policy.
func applyCardCompletion(
	user *domain.User,
	card *domain.Card,
	tree []domain.SkillNode,
	date string,
	now time.Time,
	params *Params,
) (*domain.User, *domain.XPGain) {
	if user == nil || card == nil || card.ID == "" || !dates.Valid(date) {
		return user, nil
	}

	if user.CompletedCardOn(date, card.ID) {
		return user, nil
	}

	next := user.Clone()
	if next.CompletedCardsByDate == nil {
		next.CompletedCardsByDate = make(map[string][]string)
	}
	if next.XPByDomain == nil {
		next.XPByDomain = make(map[string]int)
	}

	next.CompletedCardsByDate[date] = append(next.CompletedCardsByDate[date], card.ID)

	// The streak is computed with today's completion already recorded, so
	// the first completion of the day immediately counts toward the
	// multiplier.
	streak := calculateStreak(next.CompletedCardsByDate, date, params)
	multiplier := multiplierForStreak(streak.Current, params)

	reward := card.XPReward
	if reward < 0 {
		reward = 0
	}
	gained := int(math.Round(float64(reward) * multiplier))

	next.XPByDomain[card.Domain] += gained

	gain := &domain.XPGain{
		CardID:     card.ID,
		Domain:     card.Domain,
		Amount:     gained,
		Multiplier: multiplier,
		Date:       date,
		RecordedAt: now,
	}
	next.LastXPGain = gain
	next.UpdatedAt = now

	next.CompletedSkillNodes = evaluateUnlocks(next.XPByDomain, next.CompletedSkillNodes, tree, params)

	return next, gain
}

// evaluateUnlocks marks every node whose prerequisites are all completed
// and whose domain XP meets its threshold. The pass iterates until no
// node unlocks, capped at params.MaxUnlockPasses, so multi-level
// prerequisite chains resolve within a single completion event. Unlocking
// is monotonic and idempotent: completed nodes are never re-examined or
// removed.
func evaluateUnlocks(
	xpByDomain map[string]int,
	completed map[string]bool,
	tree []domain.SkillNode,
	params *Params,
) map[string]bool {
	next := make(map[string]bool, len(completed))
	for id, done := range completed {
		if done {
			next[id] = true
		}
	}

	for pass := 0; pass < params.MaxUnlockPasses; pass++ {
		changed := false
		for _, node := range tree {
			if node.ID == "" || next[node.ID] {
				continue
			}
			if !prerequisitesMet(node, next) {
				continue
			}
			if nodeDomainXP(xpByDomain, node) >= node.XPRequired {
				next[node.ID] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return next
}

// prerequisitesMet reports whether every prerequisite node is completed.
func prerequisitesMet(node domain.SkillNode, completed map[string]bool) bool {
	for _, prereq := range node.Prerequisites {
		if !completed[prereq] {
			return false
		}
	}
	return true
}

// nodeDomainXP sums the user's XP across the node's domain list. A node
// with no domains draws on total XP across all domains.
func nodeDomainXP(xpByDomain map[string]int, node domain.SkillNode) int {
	if len(node.Domains) == 0 {
		total := 0
		for _, xp := range xpByDomain {
			total += xp
		}
		return total
	}

	total := 0
	for _, d := range node.Domains {
		total += xpByDomain[d]
	}
	return total
}
