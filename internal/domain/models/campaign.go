package models

import (
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Valid reports whether the status is a known campaign state.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// Campaign is a marketing campaign tracked by the dashboard.
type Campaign struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Status    CampaignStatus `json:"status" db:"status"`
	Channel   string         `json:"channel" db:"channel"` // e.g. "meta_ads", "google_ads", "email"
	Budget    float64        `json:"budget" db:"budget"`
	Spent     float64        `json:"spent" db:"spent"`
	StartDate *time.Time     `json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time     `json:"end_date,omitempty" db:"end_date"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}
