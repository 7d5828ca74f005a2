package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/external/assistant"
	"github.com/wanderhub/wanderhub-api/store"
)

// destinationChat runs an assistant conversation scoped to one cached
// destination. Assistant failures surface to the caller; there is no
// canned-content fallback for chat.
func (s *Server) destinationChat(c *gin.Context) {
	var body struct {
		DestinationID string              `json:"destination_id"`
		Messages      []assistant.Message `json:"messages"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.DestinationID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	destination, err := s.mongoStore.GetDestination(body.DestinationID)
	if err == store.ErrDestinationNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownDestination)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	reply, err := s.assistantClient.DestinationChat(c, body.Messages, assistant.DestinationContext{
		Name:         destination.Name,
		Description:  destination.Description,
		Category:     destination.Category,
		Address:      destination.Address,
		Rating:       destination.Rating,
		PriceLevel:   destination.PriceLevel,
		Website:      destination.Website,
		OpeningHours: destination.OpeningHours,
	})
	if err != nil {
		abortChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// travelGuideChat runs the general, destination-free travel
// conversation.
func (s *Server) travelGuideChat(c *gin.Context) {
	var body struct {
		Messages []assistant.Message `json:"messages"`
	}

	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	reply, err := s.assistantClient.TravelChat(c, body.Messages)
	if err != nil {
		abortChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// abortChatError separates conversation-shape errors, which are the
// caller's fault, from provider failures.
func abortChatError(c *gin.Context, err error) {
	switch err {
	case assistant.ErrNoMessages, assistant.ErrLastMessageNotUser, assistant.ErrMessageTooLong:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidConversation, err)
	default:
		abortWithEncoding(c, http.StatusBadGateway, errorAssistantUnavailable, err)
	}
}
