package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderhub/wanderhub-api/external/places"
	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/utils"
)

var (
	ErrDestinationNotFound = fmt.Errorf("destination not found")
)

// DestinationCache - cached destination records keyed by the external
// provider's place ID
type DestinationCache interface {
	UpsertPlace(place places.Place) (*schema.Destination, error)
	GetDestination(id string) (*schema.Destination, error)
	GetDestinationsByIDs(ids []string) ([]schema.Destination, error)
	ApplyPlaceDetails(id string, details *places.PlaceDetails) error
	IncrementPopularity(id string) error
	ListDestinationsNear(location schema.Location, radiusDegrees float64) ([]schema.Destination, error)
	ListStaleDestinations(olderThan time.Time, limit int64) ([]schema.Destination, error)
}

// UpsertPlace inserts or refreshes the cached record of a search result.
// The update never clears data a previous upsert already learned: fields
// the provider omitted this time keep their cached values.
func (m *mongoDB) UpsertPlace(place places.Place) (*schema.Destination, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DestinationCollection)

	now := time.Now().UTC()
	update := bson.M{
		"$set": buildPlaceUpdate(place, now),
		"$setOnInsert": bson.M{
			"_id":              uuid.New().String(),
			"place_id":         place.PlaceID,
			"popularity_score": float64(0),
			"created_at":       now,
		},
	}

	var destination schema.Destination
	err := c.FindOneAndUpdate(ctx,
		bson.M{"place_id": place.PlaceID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&destination)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"place_id": place.PlaceID,
			"error":    err,
		}).Error("upsert place")
		return nil, err
	}

	return &destination, nil
}

// buildPlaceUpdate maps a search result to the fields an upsert may
// overwrite. The category is re-derived from the provider types on
// every upsert; the optional provider fields are included only when
// present so an incomplete result cannot regress the cache. The paths
// here must stay disjoint from the $setOnInsert creation fields or the
// server rejects the whole update.
func buildPlaceUpdate(place places.Place, now time.Time) bson.M {
	set := bson.M{
		"name":             place.Name,
		"category":         utils.ReadPlaceCategory(place.Types),
		"latitude":         place.Location.Latitude,
		"longitude":        place.Location.Longitude,
		"last_accessed_at": now,
	}

	if place.Address != "" {
		set["address"] = place.Address
	}
	if place.Rating != nil {
		set["rating"] = *place.Rating
	}
	if place.PriceLevel != nil {
		set["price_level"] = *place.PriceLevel
	}
	if len(place.Photos) > 0 {
		set["photos"] = place.Photos
	}

	return set
}

// GetDestination finds a cached destination by its ID.
func (m *mongoDB) GetDestination(id string) (*schema.Destination, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DestinationCollection)

	var destination schema.Destination
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&destination); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	return &destination, nil
}

// GetDestinationsByIDs finds cached destinations for a set of IDs. IDs
// with no cached record are silently skipped.
func (m *mongoDB) GetDestinationsByIDs(ids []string) ([]schema.Destination, error) {
	if len(ids) == 0 {
		return []schema.Destination{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DestinationCollection)

	cursor, err := c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	destinations := make([]schema.Destination, 0, len(ids))
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}

	return destinations, nil
}

// ApplyPlaceDetails merges a detail lookup into the cached record.
func (m *mongoDB) ApplyPlaceDetails(id string, details *places.PlaceDetails) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DestinationCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": buildDetailsUpdate(details, time.Now().UTC())},
	)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"id":     id,
			"error":  err,
		}).Error("apply place details")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrDestinationNotFound
	}

	return nil
}

// buildDetailsUpdate maps a detail lookup to the fields a refresh may
// overwrite, with the same never-regress rule as buildPlaceUpdate.
func buildDetailsUpdate(details *places.PlaceDetails, now time.Time) bson.M {
	set := bson.M{
		"last_accessed_at": now,
	}

	if details.Overview != "" {
		set["description"] = details.Overview
	}
	if details.Website != "" {
		set["website"] = details.Website
	}
	if details.PhoneNumber != "" {
		set["phone_number"] = details.PhoneNumber
	}
	if details.Rating != nil {
		set["rating"] = *details.Rating
	}
	if details.PriceLevel != nil {
		set["price_level"] = *details.PriceLevel
	}
	if len(details.OpeningHours) > 0 {
		set["opening_hours"] = details.OpeningHours
	}
	if len(details.Photos) > 0 {
		set["photos"] = details.Photos
	}

	return set
}

// IncrementPopularity bumps the popularity counter of a destination and
// marks it as freshly accessed.
func (m *mongoDB) IncrementPopularity(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DestinationCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"popularity_score": 1},
			"$set": bson.M{"last_accessed_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrDestinationNotFound
	}

	return nil
}

// ListDestinationsNear returns the cached destinations inside a square
// bounding box around a location. The box is a coarse pre-filter; exact
// distance checks happen in the scoring layer.
func (m *mongoDB) ListDestinationsNear(location schema.Location, radiusDegrees float64) ([]schema.Destination, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DestinationCollection)

	query := bson.M{
		"latitude": bson.M{
			"$gte": location.Latitude - radiusDegrees,
			"$lte": location.Latitude + radiusDegrees,
		},
		"longitude": bson.M{
			"$gte": location.Longitude - radiusDegrees,
			"$lte": location.Longitude + radiusDegrees,
		},
	}

	cursor, err := c.Find(ctx, query)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list destinations near")
		return nil, err
	}

	destinations := make([]schema.Destination, 0)
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}

	return destinations, nil
}

// ListStaleDestinations returns destinations whose details have not been
// refreshed since olderThan, oldest first.
func (m *mongoDB) ListStaleDestinations(olderThan time.Time, limit int64) ([]schema.Destination, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DestinationCollection)

	cursor, err := c.Find(ctx,
		bson.M{"last_accessed_at": bson.M{"$lt": olderThan}},
		options.Find().SetSort(bson.M{"last_accessed_at": 1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	destinations := make([]schema.Destination, 0)
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}

	return destinations, nil
}
