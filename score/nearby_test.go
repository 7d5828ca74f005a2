package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderhub/wanderhub-api/schema"
)

func ratingOf(r float64) *float64 {
	return &r
}

func scoredAt(name, category string, distance float64) schema.ScoredDestination {
	return schema.ScoredDestination{
		Destination: schema.Destination{ID: name, Name: name, Category: category},
		Distance:    distance,
	}
}

func TestNearbyScoreWithoutSurvey(t *testing.T) {
	d := scoredAt("d", schema.CategoryTemples, 5)
	d.Rating = ratingOf(5.0)
	d.PopularityScore = 200

	// without a survey the bonus terms are not evaluated at all
	assert.InDelta(t, 95, NearbyScore(nil, d), 1e-9)
}

func TestNearbyScoreMonotonicInDistance(t *testing.T) {
	survey := &schema.UserSurvey{PreferredCategories: []string{schema.CategoryTemples}}

	near := scoredAt("near", schema.CategoryTemples, 10)
	far := scoredAt("far", schema.CategoryTemples, 30)

	assert.Greater(t, NearbyScore(survey, near), NearbyScore(survey, far))
}

func TestCategoryBonusIsBinary(t *testing.T) {
	// a destination can only be one category, so overlapping several
	// preferred categories must not stack the bonus
	survey := &schema.UserSurvey{
		PreferredCategories: []string{schema.CategoryTemples, schema.CategoryTemples, schema.CategoryHills},
	}

	d := scoredAt("d", schema.CategoryTemples, 10)
	assert.InDelta(t, 100-10+30, NearbyScore(survey, d), 1e-9)
}

func TestNearbyScoreMissingRating(t *testing.T) {
	survey := &schema.UserSurvey{PreferredCategories: []string{}}

	d := scoredAt("d", schema.CategoryOther, 10)
	assert.InDelta(t, 90, NearbyScore(survey, d), 1e-9)
}

// A user with no survey and three destinations at 5, 20 and 60 km: the
// 60 km one is outside the serving radius, the rest rank by distance
// with scores 95 and 80.
func TestNotificationScenarioNoSurvey(t *testing.T) {
	candidates := []schema.Destination{
		destinationAtKm("five", 5),
		destinationAtKm("twenty", 20),
		destinationAtKm("sixty", 60),
	}

	nearby := WithinRadius(origin, candidates, NearbyRadiusKm)
	ranked := RankNearby(nil, nearby, NearbyLimit)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "five", ranked[0].Name)
	assert.Equal(t, "twenty", ranked[1].Name)
	assert.InDelta(t, 95, ranked[0].Score, 1e-6)
	assert.InDelta(t, 80, ranked[1].Score, 1e-6)
}

// A preferred-category temple at 10 km with rating 4.0 must outrank a
// closer, better-rated non-temple: 140 vs 123 at equal popularity.
func TestNotificationScenarioCategoryOutweighsDistance(t *testing.T) {
	survey := &schema.UserSurvey{PreferredCategories: []string{schema.CategoryTemples}}

	temple := scoredAt("temple", schema.CategoryTemples, 10)
	temple.Rating = ratingOf(4.0)
	temple.PopularityScore = 50

	cafe := scoredAt("cafe", schema.CategoryCafes, 2)
	cafe.Rating = ratingOf(5.0)
	cafe.PopularityScore = 50

	ranked := RankNearby(survey, []schema.ScoredDestination{cafe, temple}, NearbyLimit)

	assert.Equal(t, "temple", ranked[0].Name)
	assert.Equal(t, "cafe", ranked[1].Name)
	assert.InDelta(t, 140+50*0.1, ranked[0].Score, 1e-9)
	assert.InDelta(t, 123+50*0.1, ranked[1].Score, 1e-9)
}

func TestRankNearbyTruncates(t *testing.T) {
	candidates := make([]schema.ScoredDestination, 0, 15)
	for i := 0; i < 15; i++ {
		candidates = append(candidates, scoredAt(string(rune('a'+i)), schema.CategoryOther, float64(i)))
	}

	ranked := RankNearby(nil, candidates, NearbyLimit)
	assert.Len(t, ranked, NearbyLimit)
}

func TestRankNearbyStableOnTies(t *testing.T) {
	first := scoredAt("first", schema.CategoryOther, 10)
	second := scoredAt("second", schema.CategoryOther, 10)

	ranked := RankNearby(nil, []schema.ScoredDestination{first, second}, NearbyLimit)

	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
}

func TestRankByDistance(t *testing.T) {
	ranked := RankByDistance([]schema.ScoredDestination{
		scoredAt("far", schema.CategoryOther, 30),
		scoredAt("near", schema.CategoryOther, 3),
	})

	assert.Equal(t, "near", ranked[0].Name)
	assert.Equal(t, "far", ranked[1].Name)
}
