package models

import (
	"time"
)

// Lead is a CRM contact moving through a sales funnel.
// Stage must be one of the stages of the funnel named by Funnel, as defined
// in the funnel registry.
type Lead struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone,omitempty" db:"phone"`
	Funnel     string    `json:"funnel" db:"funnel"`
	Stage      string    `json:"stage" db:"stage"`
	Source     string    `json:"source,omitempty" db:"source"` // acquisition channel
	CampaignID *string   `json:"campaign_id,omitempty" db:"campaign_id"`
	Value      float64   `json:"value" db:"value"` // estimated deal value
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
