package score

import (
	"sort"

	"github.com/wanderhub/wanderhub-api/schema"
)

// NearbyLimit caps the ranked list served by the notification path.
const NearbyLimit = 10

const (
	categoryBonus    = 30
	ratingWeight     = 5
	popularityWeight = 0.1
	distanceBaseline = 100
)

// NearbyScore computes the notification-path ranking score for one
// candidate. Closer is better. When the account has a survey on file
// the category, rating and popularity bonuses apply on top of the
// distance base; without a survey the bonus terms are not evaluated at
// all and the score is the distance term alone. The category bonus is
// flat: matching one preferred category scores the same as matching
// several.
func NearbyScore(survey *schema.UserSurvey, d schema.ScoredDestination) float64 {
	s := distanceBaseline - d.Distance

	if survey == nil {
		return s
	}

	for _, category := range survey.PreferredCategories {
		if category == d.Category {
			s += categoryBonus
			break
		}
	}
	if d.Rating != nil {
		s += *d.Rating * ratingWeight
	}
	s += d.PopularityScore * popularityWeight

	return s
}

// RankNearby orders candidates descending by NearbyScore and truncates
// to limit. The sort is stable, so candidates with equal scores retain
// their prior relative order.
func RankNearby(survey *schema.UserSurvey, candidates []schema.ScoredDestination, limit int) []schema.ScoredDestination {
	ranked := make([]schema.ScoredDestination, len(candidates))
	copy(ranked, candidates)
	for i := range ranked {
		ranked[i].Score = NearbyScore(survey, ranked[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
