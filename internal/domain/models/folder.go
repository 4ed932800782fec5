package models

import (
	"time"
)

// Folder is a named container of creatives, forming a tree via ParentID.
// The root is implicit: ParentID == nil means top level; there is no stored
// root record. Membership is owned by the folder side — CreativeIDs holds the
// set of creatives filed here, and a creative in no folder lives at the root.
// A creative's folder is derived by reverse lookup, never stored on the
// creative itself.
type Folder struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	ParentID    *string   `json:"parent_id" db:"parent_id"` // nil = root level
	CreativeIDs []string  `json:"creative_ids" db:"creative_ids"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Contains reports whether the creative is filed in this folder.
func (f *Folder) Contains(creativeID string) bool {
	for _, id := range f.CreativeIDs {
		if id == creativeID {
			return true
		}
	}
	return false
}
