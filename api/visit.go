package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/store"
)

// listVisits returns the account's visit history, most recent first.
func (s *Server) listVisits(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	visits, err := s.store.ListVisits(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

// addVisit records a visit to a destination. The visit time defaults to
// now when the caller does not provide one.
func (s *Server) addVisit(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		DestinationID string     `json:"destination_id"`
		Notes         string     `json:"notes"`
		VisitedAt     *time.Time `json:"visited_at"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.DestinationID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.mongoStore.GetDestination(body.DestinationID); err != nil {
		if err == store.ErrDestinationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownDestination)
			return
		}
		shouldInterupt(err, c)
		return
	}

	visitedAt := time.Now().UTC()
	if body.VisitedAt != nil {
		visitedAt = *body.VisitedAt
	}

	visit, err := s.store.AddVisit(account.ID, body.DestinationID, body.Notes, visitedAt)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, visit)
}
