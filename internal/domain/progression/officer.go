package progression

import (
	"sort"

	"github.com/phrazzld/questline/internal/domain"
)

// DomainShare is one domain's contribution to the user's total XP.
type DomainShare struct {
	Domain string  `json:"domain"`
	XP     int     `json:"xp"`
	Share  float64 `json:"share"`
}

// OfficerProfile aggregates all domain XP into a single overall rank.
type OfficerProfile struct {
	TotalXP         int           `json:"total_xp"`
	Level           int           `json:"level"`
	XPIntoLevel     int           `json:"xp_into_level"`
	XPForLevel      int           `json:"xp_for_level"`
	Progress        float64       `json:"progress"`
	PrimaryDomain   string        `json:"primary_domain,omitempty"`
	DomainBreakdown []DomainShare `json:"domain_breakdown"`
	RankName        string        `json:"rank_name"`
}

// calculateOfficerProfile computes the fixed-size overall leveling curve:
// every level spans OfficerLevelSize XP, level 1 being the floor. The
// rank name comes from a descending-threshold lookup over the ladder.
func calculateOfficerProfile(user *domain.User, params *Params) OfficerProfile {
	profile := OfficerProfile{
		XPForLevel:      params.OfficerLevelSize,
		DomainBreakdown: []DomainShare{},
	}

	if user != nil {
		profile.TotalXP = user.TotalXP()

		for d, xp := range user.XPByDomain {
			share := 0.0
			if profile.TotalXP > 0 {
				share = float64(xp) / float64(profile.TotalXP)
			}
			profile.DomainBreakdown = append(profile.DomainBreakdown, DomainShare{
				Domain: d,
				XP:     xp,
				Share:  share,
			})
		}
	}

	// Descending by XP; name tiebreak keeps the ordering stable across
	// map iteration order.
	sort.Slice(profile.DomainBreakdown, func(i, j int) bool {
		a, b := profile.DomainBreakdown[i], profile.DomainBreakdown[j]
		if a.XP != b.XP {
			return a.XP > b.XP
		}
		return a.Domain < b.Domain
	})

	if len(profile.DomainBreakdown) > 0 && profile.DomainBreakdown[0].XP > 0 {
		profile.PrimaryDomain = profile.DomainBreakdown[0].Domain
	}

	profile.Level = profile.TotalXP/params.OfficerLevelSize + 1
	profile.XPIntoLevel = profile.TotalXP % params.OfficerLevelSize
	profile.Progress = float64(profile.XPIntoLevel) / float64(params.OfficerLevelSize)

	for _, band := range params.RankLadder {
		if profile.Level >= band.MinLevel {
			profile.RankName = band.Name
			break
		}
	}

	return profile
}
