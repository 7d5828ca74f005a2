package schema

import (
	"time"

	"github.com/google/uuid"
)

// Hotel is an accommodation offer attached to a destination. Rows are
// imported by an external feed; this service only reads them.
type Hotel struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	DestinationID string    `json:"destination_id" gorm:"index"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Rating        *float64  `json:"rating,omitempty"`
	Website       string    `json:"website,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Transport is a way of reaching a destination.
type Transport struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	DestinationID string    `json:"destination_id" gorm:"index"`
	Mode          string    `json:"mode"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Duration      int       `json:"duration_minutes"`
	CreatedAt     time.Time `json:"created_at"`
}
