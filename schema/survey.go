package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
	BudgetLuxury = "luxury"
)

const (
	TravelStyleSolo   = "solo"
	TravelStyleCouple = "couple"
	TravelStyleFamily = "family"
	TravelStyleGroup  = "group"
)

// UserSurvey captures an account's stated travel preferences. At most
// one survey exists per account; saving again replaces the previous
// answers. Interests and preferred categories are stored lowercased.
type UserSurvey struct {
	ID                  uuid.UUID      `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID           uuid.UUID      `json:"-" gorm:"type:uuid;unique_index"`
	Interests           pq.StringArray `json:"interests" gorm:"type:text[]"`
	Budget              string         `json:"budget"`
	TravelStyle         string         `json:"travel_style"`
	PreferredCategories pq.StringArray `json:"preferred_categories" gorm:"type:text[]"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func ValidBudget(b string) bool {
	switch b {
	case BudgetLow, BudgetMedium, BudgetHigh, BudgetLuxury:
		return true
	}
	return false
}

func ValidTravelStyle(s string) bool {
	switch s {
	case TravelStyleSolo, TravelStyleCouple, TravelStyleFamily, TravelStyleGroup:
		return true
	}
	return false
}
