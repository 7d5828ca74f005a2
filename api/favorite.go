package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/store"
)

type favoriteItem struct {
	DestinationID string              `json:"destination_id"`
	SavedAt       time.Time           `json:"saved_at"`
	Destination   *schema.Destination `json:"destination,omitempty"`
}

// listFavorites returns the account's saved destinations, newest first,
// enriched with the cached destination records that still resolve.
func (s *Server) listFavorites(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	favorites, err := s.store.ListFavorites(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.DestinationID)
	}

	destinations, err := s.mongoStore.GetDestinationsByIDs(ids)
	if shouldInterupt(err, c) {
		return
	}
	byID := make(map[string]schema.Destination, len(destinations))
	for _, d := range destinations {
		byID[d.ID] = d
	}

	items := make([]favoriteItem, 0, len(favorites))
	for _, f := range favorites {
		item := favoriteItem{
			DestinationID: f.DestinationID,
			SavedAt:       f.CreatedAt,
		}
		if d, ok := byID[f.DestinationID]; ok {
			destination := d
			item.Destination = &destination
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"favorites": items})
}

// addFavorite saves a destination. Saving it twice is a conflict.
func (s *Server) addFavorite(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		DestinationID string `json:"destination_id"`
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

	favorite, err := s.store.AddFavorite(account.ID, body.DestinationID)
	if err == store.ErrAlreadyFavorited {
		abortWithEncoding(c, http.StatusConflict, errorAlreadyFavorited)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// removeFavorite unsaves a destination. Unsaving one that was never
// saved succeeds quietly.
func (s *Server) removeFavorite(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	err := s.store.RemoveFavorite(account.ID, c.Param("destinationID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
