package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/schema"
)

// updateLocation stores the account's last reported position, the
// anchor of the notification and recommendation paths.
func (s *Server) updateLocation(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.Latitude == nil || body.Longitude == nil ||
		!validCoordinates(*body.Latitude, *body.Longitude) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	err := s.store.UpdateAccountLocation(account.ID, schema.Location{
		Latitude:  *body.Latitude,
		Longitude: *body.Longitude,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// submitSurvey saves the account's travel preferences. A later
// submission replaces the previous one.
func (s *Server) submitSurvey(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		Interests           []string `json:"interests"`
		Budget              string   `json:"budget"`
		TravelStyle         string   `json:"travel_style"`
		PreferredCategories []string `json:"preferred_categories"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if len(body.Interests) == 0 ||
		!schema.ValidBudget(body.Budget) ||
		!schema.ValidTravelStyle(body.TravelStyle) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	survey := schema.UserSurvey{
		AccountID:           account.ID,
		Interests:           lowercased(body.Interests),
		Budget:              body.Budget,
		TravelStyle:         body.TravelStyle,
		PreferredCategories: lowercased(body.PreferredCategories),
	}

	if err := s.store.UpsertSurvey(&survey); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, survey)
}

// accountStats counts the account's saved and visited destinations.
func (s *Server) accountStats(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	stats, err := s.store.GetAccountStats(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

func lowercased(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
