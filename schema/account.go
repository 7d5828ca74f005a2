package schema

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user. Session issuance lives outside this
// service; accounts are recognized by the email subject of the session
// token.
type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email        string    `json:"email" gorm:"unique_index;not null"`
	Name         string    `json:"name"`
	LastLocation *Location `json:"location" gorm:"type:jsonb"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Favorite marks a destination saved by an account. One row per
// (account, destination) pair.
type Favorite struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID     uuid.UUID `json:"-" gorm:"type:uuid;unique_index:idx_favorite_account_destination"`
	DestinationID string    `json:"destination_id" gorm:"unique_index:idx_favorite_account_destination"`
	CreatedAt     time.Time `json:"created_at"`
}

// Visit records that an account has been to a destination.
type Visit struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID     uuid.UUID `json:"-" gorm:"type:uuid;index"`
	DestinationID string    `json:"destination_id"`
	Notes         string    `json:"notes,omitempty"`
	VisitedAt     time.Time `json:"visited_at"`
}

type AccountStats struct {
	Favorites int `json:"favorites"`
	Visits    int `json:"visits"`
}
