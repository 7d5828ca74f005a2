package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/score"
)

type nearbyNotification struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Distance float64  `json:"distance"`
	Rating   *float64 `json:"rating,omitempty"`
	Score    float64  `json:"score"`
}

// nearbyNotifications ranks the cached destinations around the
// account's stored location. An account with no stored location gets an
// empty list, not an error. Candidates pass the coarse bounding-box
// phase in the store, then the exact haversine cut, then the preference
// ranking.
func (s *Server) nearbyNotifications(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if account.LastLocation == nil {
		c.JSON(http.StatusOK, gin.H{"notifications": []nearbyNotification{}})
		return
	}
	origin := *account.LastLocation

	candidates, err := s.mongoStore.ListDestinationsNear(origin, score.CoarseRadiusDegrees)
	if shouldInterupt(err, c) {
		return
	}

	survey, err := s.store.GetSurvey(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	nearby := score.WithinRadius(origin, candidates, score.NearbyRadiusKm)
	ranked := score.RankNearby(survey, nearby, score.NearbyLimit)

	notifications := make([]nearbyNotification, 0, len(ranked))
	for _, d := range ranked {
		notifications = append(notifications, nearbyNotification{
			ID:       d.ID,
			Name:     d.Name,
			Category: d.Category,
			Distance: d.Distance,
			Rating:   d.Rating,
			Score:    d.Score,
		})
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
