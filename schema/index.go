package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexDestinationCollection())
}

// IndexDestinationCollection sets the keys the cache layer depends on:
// place_id is the upsert key, the latitude/longitude pair serves the
// coarse bounding-box query, and last_accessed_at drives the staleness
// scan of the refresh worker.
func (m *MongoDBIndexer) IndexDestinationCollection() error {
	if err := m.createIndex(DestinationCollection, mongo.IndexModel{
		Keys: bson.M{
			"place_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(DestinationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "latitude", Value: 1},
			{Key: "longitude", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(DestinationCollection, mongo.IndexModel{
		Keys: bson.M{
			"last_accessed_at": 1,
		},
	})
}
