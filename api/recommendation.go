package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/external/assistant"
	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/score"
)

// personalRecommendations picks destinations around the account's
// stored location that fit the account's survey. The assistant gets one
// shot (with its internal model retry); any failure or unusable answer
// falls back to the deterministic interest ranking, so the endpoint
// always answers when candidates exist.
func (s *Server) personalRecommendations(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if account.LastLocation == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownAccountLocation)
		return
	}
	origin := *account.LastLocation

	survey, err := s.store.GetSurvey(account.ID)
	if shouldInterupt(err, c) {
		return
	}
	if survey == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorSurveyNotFound)
		return
	}

	destinations, err := s.mongoStore.ListDestinationsNear(origin, score.CoarseRadiusDegrees)
	if shouldInterupt(err, c) {
		return
	}

	nearby := score.WithinRadius(origin, destinations, score.NearbyRadiusKm)
	if len(nearby) == 0 {
		c.JSON(http.StatusOK, gin.H{"recommendations": []schema.ScoredDestination{}})
		return
	}

	names := s.recommendNames(c, survey, origin, nearby)

	byName := make(map[string]schema.ScoredDestination, len(nearby))
	for _, d := range nearby {
		if _, ok := byName[d.Name]; !ok {
			byName[d.Name] = d
		}
	}

	recommendations := make([]schema.ScoredDestination, 0, len(names))
	for _, name := range names {
		if d, ok := byName[name]; ok {
			recommendations = append(recommendations, d)
		}
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// recommendNames asks the assistant once and falls back to the
// deterministic ranking on any error.
func (s *Server) recommendNames(c *gin.Context, survey *schema.UserSurvey, origin schema.Location, nearby []schema.ScoredDestination) []string {
	candidates := make([]assistant.Candidate, 0, len(nearby))
	for _, d := range nearby {
		candidates = append(candidates, assistant.Candidate{
			Name:     d.Name,
			Category: d.Category,
			Distance: d.Distance,
		})
	}

	names, err := s.assistantClient.RecommendDestinations(c, survey.Interests, survey.Budget, origin, candidates)
	if err != nil {
		log.WithError(err).Warn("assistant recommendation, using fallback")
		return score.FallbackRecommendations(survey.Interests, nearby)
	}
	return names
}
