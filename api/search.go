package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/score"
	"github.com/wanderhub/wanderhub-api/utils"
)

// searchRadiusMeters is the provider-side bias radius applied when the
// caller includes a location.
const searchRadiusMeters = 50000

func validCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// searchDestinations runs a text search against the place provider and
// folds every result into the destination cache. An empty provider
// result is a valid empty list. When the caller includes a location the
// results carry a distance and come back closest first.
func (s *Server) searchDestinations(c *gin.Context) {
	var params struct {
		Query     string   `form:"q"`
		Latitude  *float64 `form:"lat"`
		Longitude *float64 `form:"lng"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Query == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var location *schema.Location
	if params.Latitude != nil || params.Longitude != nil {
		if params.Latitude == nil || params.Longitude == nil ||
			!validCoordinates(*params.Latitude, *params.Longitude) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		location = &schema.Location{
			Latitude:  *params.Latitude,
			Longitude: *params.Longitude,
		}
	}

	results, err := s.placesClient.SearchPlaces(c, params.Query, location, searchRadiusMeters)
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorPlaceProvider, err)
		return
	}

	destinations := make([]schema.Destination, 0, len(results))
	for _, place := range results {
		destination, err := s.mongoStore.UpsertPlace(place)
		if err != nil {
			log.WithField("place_id", place.PlaceID).WithError(err).Error("upsert search result")
			continue
		}
		destinations = append(destinations, *destination)

		// destinations the detail worker has not enriched yet
		if destination.Description == "" {
			s.enqueueDetailRefresh(destination.ID)
		}
	}

	if location == nil {
		c.JSON(http.StatusOK, gin.H{"destinations": destinations})
		return
	}

	withDistance := make([]schema.ScoredDestination, 0, len(destinations))
	for _, d := range destinations {
		withDistance = append(withDistance, schema.ScoredDestination{
			Destination: d,
			Distance:    utils.DistanceKm(*location, d.Location()),
		})
	}

	c.JSON(http.StatusOK, gin.H{"destinations": score.RankByDistance(withDistance)})
}

// enqueueDetailRefresh hands a destination to the background detail
// worker. Failures only lose freshness, never the request.
func (s *Server) enqueueDetailRefresh(destinationID string) {
	if s.background == nil {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "refresh_destination_details",
		Args: []tasks.Arg{
			{Type: "string", Value: destinationID},
		},
	}); err != nil {
		log.WithField("destination_id", destinationID).WithError(err).Error("enqueue detail refresh")
	}
}
