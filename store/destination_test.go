package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderhub/wanderhub-api/external/places"
	"github.com/wanderhub/wanderhub-api/schema"
)

func TestBuildPlaceUpdate(t *testing.T) {
	now := time.Now().UTC()
	rating := 4.3
	priceLevel := 2

	set := buildPlaceUpdate(places.Place{
		PlaceID: "place-1",
		Name:    "Lotus Temple",
		Address: "Lotus Temple Rd, New Delhi",
		Location: schema.Location{
			Latitude:  28.5535,
			Longitude: 77.2588,
		},
		Rating:     &rating,
		PriceLevel: &priceLevel,
		Photos:     []string{"ref-a"},
		Types:      []string{"place_of_worship", "tourist_attraction"},
	}, now)

	assert.Equal(t, "Lotus Temple", set["name"])
	assert.Equal(t, "Lotus Temple Rd, New Delhi", set["address"])
	assert.Equal(t, 4.3, set["rating"])
	assert.Equal(t, 2, set["price_level"])
	assert.Equal(t, schema.CategoryTemples, set["category"])
	assert.Equal(t, now, set["last_accessed_at"])
}

// A result missing optional fields must not touch the cached values.
// The category is not optional: it is re-derived on every upsert.
func TestBuildPlaceUpdateKeepsCachedData(t *testing.T) {
	set := buildPlaceUpdate(places.Place{
		PlaceID: "place-1",
		Name:    "Lotus Temple",
		Types:   []string{"point_of_interest"},
	}, time.Now().UTC())

	assert.NotContains(t, set, "address")
	assert.NotContains(t, set, "rating")
	assert.NotContains(t, set, "price_level")
	assert.NotContains(t, set, "photos")
	assert.Equal(t, schema.CategoryOther, set["category"])
}

// Mongo rejects an update whose $set and $setOnInsert touch the same
// path, so the overwrite fields must never include a creation field.
func TestBuildPlaceUpdateDisjointFromInsertFields(t *testing.T) {
	results := []places.Place{
		{
			PlaceID: "place-1",
			Name:    "Lotus Temple",
			Types:   []string{"place_of_worship"},
		},
		{
			PlaceID: "place-2",
			Name:    "Somewhere",
			Types:   []string{"point_of_interest"},
		},
	}

	for _, place := range results {
		set := buildPlaceUpdate(place, time.Now().UTC())

		assert.Contains(t, set, "category")
		for _, field := range []string{"_id", "place_id", "popularity_score", "created_at"} {
			assert.NotContains(t, set, field)
		}
	}
}

func TestBuildDetailsUpdate(t *testing.T) {
	now := time.Now().UTC()
	rating := 4.6

	set := buildDetailsUpdate(&places.PlaceDetails{
		Place: places.Place{
			PlaceID: "place-1",
			Rating:  &rating,
		},
		Overview:     "A war memorial in New Delhi.",
		Website:      "https://example.org",
		PhoneNumber:  "011 2301",
		OpeningHours: []string{"Monday: Open 24 hours"},
	}, now)

	assert.Equal(t, "A war memorial in New Delhi.", set["description"])
	assert.Equal(t, "https://example.org", set["website"])
	assert.Equal(t, "011 2301", set["phone_number"])
	assert.Equal(t, 4.6, set["rating"])
	assert.Equal(t, []string{"Monday: Open 24 hours"}, set["opening_hours"])
	assert.Equal(t, now, set["last_accessed_at"])
}

func TestBuildDetailsUpdateKeepsCachedData(t *testing.T) {
	set := buildDetailsUpdate(&places.PlaceDetails{}, time.Now().UTC())

	assert.NotContains(t, set, "description")
	assert.NotContains(t, set, "website")
	assert.NotContains(t, set, "phone_number")
	assert.NotContains(t, set, "rating")
	assert.NotContains(t, set, "opening_hours")
	assert.Contains(t, set, "last_accessed_at")
}

type DestinationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewDestinationTestSuite(connURI, dbName string) *DestinationTestSuite {
	return &DestinationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *DestinationTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexDestinationCollection(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *DestinationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Collection(schema.DestinationCollection).Drop(context.Background())
}

func (s *DestinationTestSuite) TestUpsertPlaceInsertsAndRefreshes() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	rating := 4.1
	inserted, err := store.UpsertPlace(places.Place{
		PlaceID: "upsert-place",
		Name:    "Lodhi Garden",
		Address: "Lodhi Rd",
		Location: schema.Location{
			Latitude:  28.5931,
			Longitude: 77.2197,
		},
		Rating: &rating,
		Types:  []string{"park"},
	})
	s.NoError(err)
	s.NotEmpty(inserted.ID)
	s.Equal(schema.CategoryParks, inserted.Category)

	// a later, sparser result keeps the cached optional fields, but the
	// category follows whatever the provider reports now
	refreshed, err := store.UpsertPlace(places.Place{
		PlaceID: "upsert-place",
		Name:    "Lodhi Garden",
		Types:   []string{"point_of_interest"},
	})
	s.NoError(err)
	s.Equal(inserted.ID, refreshed.ID)
	s.Equal("Lodhi Rd", refreshed.Address)
	s.Equal(schema.CategoryOther, refreshed.Category)
	if s.NotNil(refreshed.Rating) {
		s.Equal(4.1, *refreshed.Rating)
	}
}

func (s *DestinationTestSuite) TestIncrementPopularity() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	inserted, err := store.UpsertPlace(places.Place{
		PlaceID: "popular-place",
		Name:    "India Gate",
		Types:   []string{"tourist_attraction"},
	})
	s.NoError(err)

	s.NoError(store.IncrementPopularity(inserted.ID))
	s.NoError(store.IncrementPopularity(inserted.ID))

	var destination schema.Destination
	err = s.testDatabase.Collection(schema.DestinationCollection).
		FindOne(context.Background(), bson.M{"_id": inserted.ID}).
		Decode(&destination)
	s.NoError(err)
	s.Equal(float64(2), destination.PopularityScore)
}

func (s *DestinationTestSuite) TestGetDestinationNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetDestination("no-such-destination")
	s.Equal(ErrDestinationNotFound, err)
}

func TestDestinationTestSuite(t *testing.T) {
	connURI := os.Getenv("WANDERHUB_TEST_MONGODB_URI")
	if connURI == "" {
		t.Skip("WANDERHUB_TEST_MONGODB_URI not set")
	}
	suite.Run(t, NewDestinationTestSuite(connURI, "test-db"))
}
