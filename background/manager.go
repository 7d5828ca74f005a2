package background

import (
	"context"
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderhub/wanderhub-api/external/places"
	"github.com/wanderhub/wanderhub-api/store"
)

// DetailStalenessWindow is how long a destination's details stay fresh
// before the worker refreshes them.
const DetailStalenessWindow = 24 * time.Hour

const staleScanBatchSize = 50

// BackgroundManager is a struct for wanderhub background manager
type BackgroundManager struct {
	store store.WanderCore

	mongoStore store.MongoStore

	placesClient places.Places

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, placesClient places.Places, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &BackgroundManager{
		store:        store.NewWanderStore(ormDB, mongoStore),
		mongoStore:   mongoStore,
		placesClient: placesClient,
		taskServer:   taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("wanderhub-worker", 5)
	return m.worker.Launch()
}

// RefreshDestinationDetails fetches the provider detail record of one
// destination and merges it into the cache. An empty editorial overview
// means the provider has nothing better than what we hold, so the
// cached record stays as is.
func (m *BackgroundManager) RefreshDestinationDetails(destinationID string) error {
	destination, err := m.mongoStore.GetDestination(destinationID)
	if err != nil {
		if err == store.ErrDestinationNotFound {
			log.WithField("destination_id", destinationID).Warn("refresh for unknown destination")
			return nil
		}
		return err
	}

	details, err := m.placesClient.GetPlaceDetails(context.Background(), destination.PlaceID)
	if err != nil {
		log.WithFields(log.Fields{
			"destination_id": destinationID,
			"error":          err,
		}).Error("fetch place details")
		return err
	}

	if details.Overview == "" {
		return nil
	}

	return m.mongoStore.ApplyPlaceDetails(destinationID, details)
}

// RefreshStaleDestinations sweeps destinations that have not been
// touched within the staleness window and refreshes them one by one.
// Individual failures are logged and do not stop the sweep.
func (m *BackgroundManager) RefreshStaleDestinations() error {
	stale, err := m.mongoStore.ListStaleDestinations(time.Now().Add(-DetailStalenessWindow), staleScanBatchSize)
	if err != nil {
		return err
	}

	for _, destination := range stale {
		if err := m.RefreshDestinationDetails(destination.ID); err != nil {
			log.WithFields(log.Fields{
				"destination_id": destination.ID,
				"error":          err,
			}).Error("refresh stale destination")
		}
	}

	return nil
}
