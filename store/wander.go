package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/wanderhub/wanderhub-api/schema"
)

var (
	ErrAccountNotFound  = fmt.Errorf("account not found")
	ErrAlreadyFavorited = fmt.Errorf("destination already favorited")
)

// wanderhub main datastore
type WanderCore interface {
	Ping() error

	// Account
	CreateAccount(email, name string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	UpdateAccountLocation(accountID uuid.UUID, location schema.Location) error

	// Survey
	UpsertSurvey(survey *schema.UserSurvey) error
	GetSurvey(accountID uuid.UUID) (*schema.UserSurvey, error)

	// Favorite
	AddFavorite(accountID uuid.UUID, destinationID string) (*schema.Favorite, error)
	ListFavorites(accountID uuid.UUID) ([]schema.Favorite, error)
	RemoveFavorite(accountID uuid.UUID, destinationID string) error

	// Visit
	AddVisit(accountID uuid.UUID, destinationID, notes string, visitedAt time.Time) (*schema.Visit, error)
	ListVisits(accountID uuid.UUID) ([]schema.Visit, error)

	GetAccountStats(accountID uuid.UUID) (*schema.AccountStats, error)

	// Travel data
	ListHotels(destinationID string, limit int) ([]schema.Hotel, error)
	ListTransports(destinationID string, limit int) ([]schema.Transport, error)
}

// WanderStore is an implementation of WanderCore
type WanderStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewWanderStore(ormDB *gorm.DB, mongo MongoStore) *WanderStore {
	return &WanderStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *WanderStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

// CreateAccount registers an account by its verified email subject.
func (s *WanderStore) CreateAccount(email, name string) (*schema.Account, error) {
	a := schema.Account{
		Email: email,
		Name:  name,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccountByEmail returns the account of a given email
func (s *WanderStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAccountLocation saves the last reported location of an account
func (s *WanderStore) UpdateAccountLocation(accountID uuid.UUID, location schema.Location) error {
	result := s.ormDB.Model(schema.Account{}).
		Where("id = ?", accountID).
		Update("last_location", location)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// UpsertSurvey saves an account's preference survey. A later submission
// replaces the previous answers in place.
func (s *WanderStore) UpsertSurvey(survey *schema.UserSurvey) error {
	var existing schema.UserSurvey
	err := s.ormDB.Where("account_id = ?", survey.AccountID).First(&existing).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return s.ormDB.Create(survey).Error
		}
		return err
	}

	survey.ID = existing.ID
	survey.CreatedAt = existing.CreatedAt
	return s.ormDB.Save(survey).Error
}

// GetSurvey returns the survey of an account, or nil without error when
// the account has not answered one.
func (s *WanderStore) GetSurvey(accountID uuid.UUID) (*schema.UserSurvey, error) {
	var survey schema.UserSurvey
	if err := s.ormDB.Where("account_id = ?", accountID).First(&survey).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

// AddFavorite saves a destination for an account. Saving the same
// destination twice is a conflict.
func (s *WanderStore) AddFavorite(accountID uuid.UUID, destinationID string) (*schema.Favorite, error) {
	f := schema.Favorite{
		AccountID:     accountID,
		DestinationID: destinationID,
	}

	if err := s.ormDB.Create(&f).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	return &f, nil
}

// ListFavorites returns an account's saved destinations, newest first
func (s *WanderStore) ListFavorites(accountID uuid.UUID) ([]schema.Favorite, error) {
	favorites := make([]schema.Favorite, 0)
	if err := s.ormDB.
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// RemoveFavorite deletes a saved destination. Removing one that was
// never saved is a no-op.
func (s *WanderStore) RemoveFavorite(accountID uuid.UUID, destinationID string) error {
	return s.ormDB.
		Where("account_id = ? AND destination_id = ?", accountID, destinationID).
		Delete(schema.Favorite{}).Error
}

// AddVisit records that an account has been to a destination
func (s *WanderStore) AddVisit(accountID uuid.UUID, destinationID, notes string, visitedAt time.Time) (*schema.Visit, error) {
	v := schema.Visit{
		AccountID:     accountID,
		DestinationID: destinationID,
		Notes:         notes,
		VisitedAt:     visitedAt,
	}

	if err := s.ormDB.Create(&v).Error; err != nil {
		return nil, err
	}

	return &v, nil
}

// ListVisits returns an account's visit history, most recent first
func (s *WanderStore) ListVisits(accountID uuid.UUID) ([]schema.Visit, error) {
	visits := make([]schema.Visit, 0)
	if err := s.ormDB.
		Where("account_id = ?", accountID).
		Order("visited_at desc").
		Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

// GetAccountStats counts an account's favorites and visits
func (s *WanderStore) GetAccountStats(accountID uuid.UUID) (*schema.AccountStats, error) {
	var stats schema.AccountStats

	if err := s.ormDB.Model(schema.Favorite{}).
		Where("account_id = ?", accountID).
		Count(&stats.Favorites).Error; err != nil {
		return nil, err
	}
	if err := s.ormDB.Model(schema.Visit{}).
		Where("account_id = ?", accountID).
		Count(&stats.Visits).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// ListHotels returns the cheapest hotel offers of a destination
func (s *WanderStore) ListHotels(destinationID string, limit int) ([]schema.Hotel, error) {
	hotels := make([]schema.Hotel, 0)
	if err := s.ormDB.
		Where("destination_id = ?", destinationID).
		Order("price asc").
		Limit(limit).
		Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// ListTransports returns the cheapest transport options of a destination
func (s *WanderStore) ListTransports(destinationID string, limit int) ([]schema.Transport, error) {
	transports := make([]schema.Transport, 0)
	if err := s.ormDB.
		Where("destination_id = ?", destinationID).
		Order("price asc").
		Limit(limit).
		Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}
