package places

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/wanderhub/wanderhub-api/schema"
)

const (
	logPrefix      = "places"
	defaultTimeout = 10 * time.Second

	photoBaseURL = "https://maps.googleapis.com/maps/api/place/photo"
)

// Place is a search result from the external place provider. Rating and
// PriceLevel are nil when the provider did not return them.
type Place struct {
	PlaceID    string
	Name       string
	Address    string
	Location   schema.Location
	Rating     *float64
	PriceLevel *int
	Photos     []string
	Types      []string
}

// PlaceDetails extends Place with the fields only available from a
// detail lookup.
type PlaceDetails struct {
	Place
	Overview     string
	Website      string
	PhoneNumber  string
	OpeningHours []string
	Reviews      []Review
}

type Review struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Time   int    `json:"time"`
}

// Places - interface to operate the external place-search provider
type Places interface {
	SearchPlaces(ctx context.Context, query string, location *schema.Location, radiusMeters uint) ([]Place, error)
	GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error)
	PhotoURL(photoReference string, maxWidth int) string
}

type placesClient struct {
	client *maps.Client
	apiKey string
}

// New - new Places interface
func New(apiKey string) (Places, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new places client")

		return nil, err
	}

	return &placesClient{
		client: client,
		apiKey: apiKey,
	}, nil
}

// SearchPlaces runs a text search against the provider. A zero-result
// response is a valid success with an empty list, not an error.
func (p *placesClient) SearchPlaces(ctx context.Context, query string, location *schema.Location, radiusMeters uint) ([]Place, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"query":  query,
	}).Info("search places")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req := &maps.TextSearchRequest{
		Query: query,
	}
	if location != nil {
		req.Location = &maps.LatLng{
			Lat: location.Latitude,
			Lng: location.Longitude,
		}
		req.Radius = radiusMeters
	}

	resp, err := p.client.TextSearch(ctx, req)
	if err != nil {
		return nil, err
	}

	result := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		result = append(result, fromSearchResult(r))
	}
	return result, nil
}

// GetPlaceDetails fetches the extended record of a single place.
func (p *placesClient) GetPlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := p.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
	})
	if err != nil {
		return nil, err
	}

	details := fromDetailsResult(resp)
	return &details, nil
}

// PhotoURL builds the public URL of a photo reference.
func (p *placesClient) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf("%s?maxwidth=%d&photo_reference=%s&key=%s",
		photoBaseURL, maxWidth, photoReference, p.apiKey)
}

// fromSearchResult converts a provider search result. The provider's
// zero values for rating and price level mean "not returned" and map to
// nil.
func fromSearchResult(r maps.PlacesSearchResult) Place {
	place := Place{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: r.FormattedAddress,
		Location: schema.Location{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		},
		Types: r.Types,
	}

	if r.Rating > 0 {
		rating := float64(r.Rating)
		place.Rating = &rating
	}
	if r.PriceLevel > 0 {
		priceLevel := r.PriceLevel
		place.PriceLevel = &priceLevel
	}
	for _, photo := range r.Photos {
		place.Photos = append(place.Photos, photo.PhotoReference)
	}

	return place
}

func fromDetailsResult(r maps.PlaceDetailsResult) PlaceDetails {
	details := PlaceDetails{
		Place: Place{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Address: r.FormattedAddress,
			Location: schema.Location{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Types: r.Types,
		},
		Website:     r.Website,
		PhoneNumber: r.FormattedPhoneNumber,
	}

	if r.Rating > 0 {
		rating := float64(r.Rating)
		details.Rating = &rating
	}
	if r.PriceLevel > 0 {
		priceLevel := r.PriceLevel
		details.PriceLevel = &priceLevel
	}
	for _, photo := range r.Photos {
		details.Photos = append(details.Photos, photo.PhotoReference)
	}
	if r.EditorialSummary != nil {
		details.Overview = r.EditorialSummary.Overview
	}
	if r.OpeningHours != nil {
		details.OpeningHours = r.OpeningHours.WeekdayText
	}
	for _, review := range r.Reviews {
		details.Reviews = append(details.Reviews, Review{
			Author: review.AuthorName,
			Rating: review.Rating,
			Text:   review.Text,
			Time:   review.Time,
		})
	}

	return details
}
