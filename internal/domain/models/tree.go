package models

import "time"

// LibraryTree is the nested folder/creative view of the whole library.
type LibraryTree struct {
	Folders   []*FolderTreeNode    `json:"folders"`
	Creatives []CreativeTreeNode   `json:"creatives"` // unfiled, at the root
}

// FolderTreeNode is a folder in the tree with nested children.
type FolderTreeNode struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	ParentID  *string            `json:"parent_id"`
	CreatedAt time.Time          `json:"created_at"`
	Folders   []*FolderTreeNode  `json:"folders"` // pointers for proper nesting
	Creatives []CreativeTreeNode `json:"creatives"`
}

// CreativeTreeNode is a creative in the tree (metadata only).
type CreativeTreeNode struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CreativeType `json:"type"`
	Funnel    string       `json:"funnel"`
	UpdatedAt time.Time    `json:"updated_at"`
}
