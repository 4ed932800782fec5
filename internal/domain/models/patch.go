package models

import (
	"time"
)

// Patch types carry partial updates with explicit optional fields per entity,
// instead of an open map merged into the record. A nil field means "leave
// unchanged"; pointer-to-pointer fields distinguish "unchanged" from
// "set to null".

// FolderPatch is a partial update to a folder.
type FolderPatch struct {
	Name        *string
	ParentID    **string // nil = unchanged; *nil = move to root; **id = move under id
	CreativeIDs []string // nil = unchanged; non-nil replaces the membership set
}

// CreativePatch is a partial update to a creative.
type CreativePatch struct {
	Name    *string
	Type    *CreativeType
	FileURL **string
	Funnel  *string
}

// CampaignPatch is a partial update to a campaign.
type CampaignPatch struct {
	Name      *string
	Status    *CampaignStatus
	Channel   *string
	Budget    *float64
	Spent     *float64
	StartDate **time.Time
	EndDate   **time.Time
}

// AudiencePatch is a partial update to an audience.
type AudiencePatch struct {
	Name        *string
	Description *string
	Size        *int
	Tags        []string
}

// LeadPatch is a partial update to a lead.
type LeadPatch struct {
	Name       *string
	Email      *string
	Phone      *string
	Funnel     *string
	Stage      *string
	Source     *string
	CampaignID **string
	Value      *float64
}

// GoalPatch is a partial update to a goal.
type GoalPatch struct {
	Name         *string
	Metric       *string
	TargetValue  *float64
	CurrentValue *float64
	Deadline     **time.Time
}
