package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/external/places"
	"github.com/wanderhub/wanderhub-api/store"
)

const (
	destinationPhotoLimit  = 10
	destinationPhotoWidth  = 800
	destinationReviewLimit = 5
	travelOptionLimit      = 5
)

// getDestination serves the full record of a cached destination. A live
// detail lookup refreshes the cache on the way when the provider has an
// editorial overview; a failed lookup degrades to the cached record.
func (s *Server) getDestination(c *gin.Context) {
	id := c.Param("destinationID")

	destination, err := s.mongoStore.GetDestination(id)
	if err == store.ErrDestinationNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownDestination)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	var reviews []places.Review
	details, err := s.placesClient.GetPlaceDetails(c, destination.PlaceID)
	if err != nil {
		log.WithField("destination_id", id).WithError(err).Warn("place detail lookup")
	} else if details.Overview != "" {
		if err := s.mongoStore.ApplyPlaceDetails(id, details); err != nil {
			log.WithField("destination_id", id).WithError(err).Error("apply place details")
		} else {
			destination.Description = details.Overview
			if details.Website != "" {
				destination.Website = details.Website
			}
			if details.PhoneNumber != "" {
				destination.PhoneNumber = details.PhoneNumber
			}
			if details.Rating != nil {
				destination.Rating = details.Rating
			}
			if details.PriceLevel != nil {
				destination.PriceLevel = details.PriceLevel
			}
			if len(details.OpeningHours) > 0 {
				destination.OpeningHours = details.OpeningHours
			}
			if len(details.Photos) > 0 {
				destination.Photos = details.Photos
			}
		}
	}
	if details != nil {
		reviews = details.Reviews
		if len(reviews) > destinationReviewLimit {
			reviews = reviews[:destinationReviewLimit]
		}
	}

	photoRefs := destination.Photos
	if len(photoRefs) > destinationPhotoLimit {
		photoRefs = photoRefs[:destinationPhotoLimit]
	}
	photos := make([]string, 0, len(photoRefs))
	for _, ref := range photoRefs {
		photos = append(photos, s.placesClient.PhotoURL(ref, destinationPhotoWidth))
	}

	hotels, err := s.store.ListHotels(id, travelOptionLimit)
	if shouldInterupt(err, c) {
		return
	}
	transports, err := s.store.ListTransports(id, travelOptionLimit)
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.IncrementPopularity(id); err != nil {
		log.WithField("destination_id", id).WithError(err).Error("increment popularity")
	}

	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
		"photos":      photos,
		"reviews":     reviews,
		"hotels":      hotels,
		"transports":  transports,
	})
}
