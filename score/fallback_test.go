package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderhub/wanderhub-api/schema"
)

func TestFallbackPrefersInterestMatch(t *testing.T) {
	interests := []string{"temples"}
	candidates := []schema.ScoredDestination{
		scoredAt("close cafe", schema.CategoryCafes, 2),
		scoredAt("far temple", schema.CategoryTemples, 40),
	}

	names := FallbackRecommendations(interests, candidates)

	assert.Equal(t, []string{"far temple", "close cafe"}, names)
}

func TestFallbackInterestBonusAccumulates(t *testing.T) {
	// unlike the category bonus of the nearby profile, each matching
	// interest adds its own bonus
	interests := []string{"nature", "nature walks"}
	candidates := []schema.ScoredDestination{
		scoredAt("woods", schema.CategoryNature, 10),
		scoredAt("shrine", schema.CategoryTemples, 10),
	}

	names := FallbackRecommendations(interests, candidates)
	assert.Equal(t, "woods", names[0])
}

func TestFallbackSubstringMatchesBothDirections(t *testing.T) {
	// "beach" is contained in the category "beaches"; the category
	// "hills" is contained in "foothills walking"
	candidates := []schema.ScoredDestination{
		scoredAt("sandy", schema.CategoryBeaches, 10),
		scoredAt("ridge", schema.CategoryHills, 10),
		scoredAt("diner", schema.CategoryRestaurants, 10),
	}

	names := FallbackRecommendations([]string{"beach"}, candidates)
	assert.Equal(t, "sandy", names[0])

	names = FallbackRecommendations([]string{"foothills walking"}, candidates)
	assert.Equal(t, "ridge", names[0])
}

func TestFallbackTopFive(t *testing.T) {
	candidates := make([]schema.ScoredDestination, 0, 8)
	for i := 0; i < 8; i++ {
		candidates = append(candidates, scoredAt(string(rune('a'+i)), schema.CategoryOther, float64(i)))
	}

	names := FallbackRecommendations(nil, candidates)

	assert.Len(t, names, RecommendationLimit)
	// no interests: pure distance penalty, closest first
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names)
}

func TestFallbackDeterministic(t *testing.T) {
	interests := []string{"temples", "nature"}
	candidates := []schema.ScoredDestination{
		scoredAt("one", schema.CategoryTemples, 12),
		scoredAt("two", schema.CategoryNature, 8),
		scoredAt("three", schema.CategoryCafes, 1),
	}

	first := FallbackRecommendations(interests, candidates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FallbackRecommendations(interests, candidates))
	}
}
