package model

import (
	"time"

	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/google/uuid"
)

// RecentLimit is the maximum number of entries kept in the recent-access list.
const RecentLimit = 10

// BookmarkID is a UUID-based identifier for a bookmark record
type BookmarkID string

// NewBookmarkID generates a new UUID v7 BookmarkID
func NewBookmarkID() BookmarkID {
	return BookmarkID(uuid.Must(uuid.NewV7()).String())
}

// Bookmark marks one section of one document for quick access. At most one
// bookmark exists per (DocumentID, EntryID) pair; re-adding toggles it away.
type Bookmark struct {
	ID         BookmarkID
	DocumentID types.DocumentID
	EntryID    types.EntryID
	Title      string
	Page       int
	CreatedAt  time.Time
}

// RecentAccess is one record in the bounded recent-access list. Recording an
// already-present (DocumentID, EntryID) pair moves it to the front instead of
// duplicating it.
type RecentAccess struct {
	DocumentID types.DocumentID
	EntryID    types.EntryID
	Title      string
	AccessedAt time.Time
}

// Favorite marks an entry across documents. Membership only, no metadata.
type Favorite struct {
	EntryID   types.EntryID
	CreatedAt time.Time
}

// BookmarkState reports the outcome of a bookmark toggle.
type BookmarkState struct {
	Added   bool `json:"added"`
	Removed bool `json:"removed"`
}

// FavoriteState reports the outcome of a favorite toggle.
type FavoriteState struct {
	Added   bool `json:"added"`
	Removed bool `json:"removed"`
}
