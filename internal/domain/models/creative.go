package models

import (
	"time"
)

// CreativeType classifies the media format of a creative.
type CreativeType string

const (
	CreativeTypeImage    CreativeType = "image"
	CreativeTypeVideo    CreativeType = "video"
	CreativeTypeCarousel CreativeType = "carousel"
	CreativeTypeText     CreativeType = "text"
)

// Valid reports whether the type is one of the known creative formats.
func (t CreativeType) Valid() bool {
	switch t {
	case CreativeTypeImage, CreativeTypeVideo, CreativeTypeCarousel, CreativeTypeText:
		return true
	}
	return false
}

// Creative is a leaf media/content record in the creative library.
// It belongs to at most one folder at a time; the folder holds the membership
// (see Folder.CreativeIDs). FileURL points at already-uploaded media — upload
// itself is handled by a separate service and is opaque here.
type Creative struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Type      CreativeType `json:"type" db:"type"`
	FileURL   *string      `json:"file_url,omitempty" db:"file_url"`
	Funnel    string       `json:"funnel" db:"funnel"` // funnel tag, validated against the funnel registry
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}
