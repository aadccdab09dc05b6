package analytics

import (
	"sort"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

// DefaultMinTAMHours is the default floor below which users are excluded
// from TAM tiering entirely.
const DefaultMinTAMHours = 5

// Expertise tiers by cross-charge hours.
const (
	TierExpert      = "Expert"
	TierExperienced = "Experienced"
	TierDeveloping  = "Developing"
)

// TAMRecord is one user's TAM activity joined against their total workload.
type TAMRecord struct {
	UserName       string
	TAMHours       float64
	TotalHours     float64
	TAMPercentage  float64
	WorklogCount   int
	Tier           string
	Recommendation string
}

// TAMTiers cross-joins TAM users against workload rankings by exact
// userName, computes each user's TAM share of total hours, drops users below
// minHours and buckets the rest into expertise tiers. The result is sorted
// descending by TAM hours.
func TAMTiers(users []hajjefy.TAMUser, rankings []hajjefy.RankedUser, minHours float64) []TAMRecord {
	totals := make(map[string]float64, len(rankings))
	for _, r := range rankings {
		totals[r.UserName] = r.TotalHours
	}

	var out []TAMRecord
	for _, u := range users {
		if u.TAMHours < minHours {
			continue
		}
		total := totals[u.UserName]
		pct := 0.0
		if total > 0 {
			pct = u.TAMHours / total * 100
		}
		out = append(out, TAMRecord{
			UserName:       u.UserName,
			TAMHours:       u.TAMHours,
			TotalHours:     total,
			TAMPercentage:  pct,
			WorklogCount:   u.WorklogCount.Int(),
			Tier:           tierFor(u.TAMHours),
			Recommendation: recommendationFor(u.TAMHours, pct),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TAMHours != out[j].TAMHours {
			return out[i].TAMHours > out[j].TAMHours
		}
		return out[i].UserName < out[j].UserName
	})
	return out
}

func tierFor(tamHours float64) string {
	switch {
	case tamHours >= 40:
		return TierExpert
	case tamHours >= 20:
		return TierExperienced
	default:
		return TierDeveloping
	}
}

// recommendationFor is a fixed decision table; check order matters and the
// first match wins.
func recommendationFor(tamHours, tamPercentage float64) string {
	switch {
	case tamHours >= 60 && tamPercentage >= 30:
		return "Strategic Account Lead"
	case tamHours >= 40:
		return "Senior TAM Resource"
	case tamHours >= 20 && tamPercentage >= 20:
		return "Active TAM Contributor"
	case tamHours >= 20:
		return "TAM Support Role"
	default:
		return "Developing TAM Skills"
	}
}

// TierGroups splits records into the three expertise tiers, preserving order.
func TierGroups(records []TAMRecord) (expert, experienced, developing []TAMRecord) {
	for _, r := range records {
		switch r.Tier {
		case TierExpert:
			expert = append(expert, r)
		case TierExperienced:
			experienced = append(experienced, r)
		default:
			developing = append(developing, r)
		}
	}
	return expert, experienced, developing
}
