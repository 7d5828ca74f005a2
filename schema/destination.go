package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const DestinationCollection = "destinations"

// Destination categories. Values are stored lowercased and compared
// case-sensitively against survey preferences.
const (
	CategoryBeaches     = "beaches"
	CategoryNature      = "nature"
	CategoryParks       = "parks"
	CategoryAttractions = "attractions"
	CategoryTemples     = "temples"
	CategoryWaterfalls  = "waterfalls"
	CategoryHills       = "hills"
	CategoryCamping     = "camping"
	CategoryMuseums     = "museums"
	CategoryRestaurants = "restaurants"
	CategoryCafes       = "cafes"
	CategoryOther       = "other"
)

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// Destination is the locally cached representation of an external place.
// A destination is created on first search-result upsert, keyed by the
// provider's place ID, and enriched by later upserts and detail refreshes.
// It is never hard-deleted here.
type Destination struct {
	ID              string    `json:"id" bson:"_id"`
	PlaceID         string    `json:"place_id" bson:"place_id"`
	Name            string    `json:"name" bson:"name"`
	Category        string    `json:"category" bson:"category"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	Address         string    `json:"address,omitempty" bson:"address,omitempty"`
	Website         string    `json:"website,omitempty" bson:"website,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Rating          *float64  `json:"rating,omitempty" bson:"rating,omitempty"`
	PriceLevel      *int      `json:"price_level,omitempty" bson:"price_level,omitempty"`
	Latitude        float64   `json:"latitude" bson:"latitude"`
	Longitude       float64   `json:"longitude" bson:"longitude"`
	Photos          []string  `json:"photos,omitempty" bson:"photos,omitempty"`
	OpeningHours    []string  `json:"opening_hours,omitempty" bson:"opening_hours,omitempty"`
	PopularityScore float64   `json:"popularity_score" bson:"popularity_score"`
	LastAccessedAt  time.Time `json:"last_accessed_at" bson:"last_accessed_at"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

func (d Destination) Location() Location {
	return Location{Latitude: d.Latitude, Longitude: d.Longitude}
}

// ScoredDestination is a destination with its computed distance from a
// reference location and ranking score. It is derived per request and
// never persisted.
type ScoredDestination struct {
	Destination
	Distance float64 `json:"distance"`
	Score    float64 `json:"score"`
}
