package models

import (
	"time"
)

// ActivityEntry is one line of the audit trail. Entries are written
// fire-and-forget after every effective mutation and are never read back by
// the mutation path itself — only the dashboard activity feed lists them.
type ActivityEntry struct {
	ID        string    `json:"id" db:"id"`
	Action    string    `json:"action" db:"action"`       // e.g. "moved", "created", "deleted"
	ItemType  string    `json:"item_type" db:"item_type"` // "folder", "creative", "campaign", ...
	ItemID    string    `json:"item_id" db:"item_id"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Details   string    `json:"details,omitempty" db:"details"`
	UserEmail string    `json:"user_email" db:"user_email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
