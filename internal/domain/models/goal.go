package models

import (
	"time"
)

// GoalStatus is derived from progress and deadline, never stored.
type GoalStatus string

const (
	GoalStatusOnTrack  GoalStatus = "on_track"
	GoalStatusAtRisk   GoalStatus = "at_risk"
	GoalStatusAchieved GoalStatus = "achieved"
	GoalStatusMissed   GoalStatus = "missed"
)

// Goal is a measurable target tracked on the dashboard, e.g. "120 qualified
// leads by end of quarter".
type Goal struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Metric       string     `json:"metric" db:"metric"` // e.g. "leads", "revenue", "conversion_rate"
	TargetValue  float64    `json:"target_value" db:"target_value"`
	CurrentValue float64    `json:"current_value" db:"current_value"`
	Deadline     *time.Time `json:"deadline,omitempty" db:"deadline"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
