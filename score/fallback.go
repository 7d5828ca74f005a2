package score

import (
	"sort"
	"strings"

	"github.com/wanderhub/wanderhub-api/schema"
)

// RecommendationLimit caps the recommendation list.
const RecommendationLimit = 5

const (
	interestBonus          = 10
	fallbackDistanceWeight = 0.1
)

// FallbackRecommendations is the deterministic recommendation used when
// the assistant is unavailable or returns an unusable result. Each
// interest that substring-matches the candidate's category (in either
// direction, case-insensitively) adds a flat bonus, so matching several
// interests accumulates; distance applies a mild penalty. Returns the
// top destination names. Pure function, no I/O.
func FallbackRecommendations(interests []string, candidates []schema.ScoredDestination) []string {
	type scored struct {
		name  string
		score float64
	}

	ranked := make([]scored, 0, len(candidates))
	for _, d := range candidates {
		category := strings.ToLower(d.Category)

		var s float64
		for _, interest := range interests {
			interest = strings.ToLower(interest)
			if strings.Contains(category, interest) || strings.Contains(interest, category) {
				s += interestBonus
			}
		}
		s -= d.Distance * fallbackDistanceWeight

		ranked = append(ranked, scored{name: d.Name, score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > RecommendationLimit {
		ranked = ranked[:RecommendationLimit]
	}

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.name
	}
	return names
}
