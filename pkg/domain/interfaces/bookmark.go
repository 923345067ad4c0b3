package interfaces

import (
	"context"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
)

// BookmarkRepository defines the interface for bookmark persistence.
// Toggle is the whole bookmark state machine: absent and present with one
// symmetric transition. Implementations must make the check-then-mutate
// sequence atomic.
type BookmarkRepository interface {
	// Toggle inserts the bookmark if no record exists for its
	// (DocumentID, EntryID) pair, otherwise removes the existing record.
	// Returns true when a bookmark was added, false when removed.
	Toggle(ctx context.Context, bookmark *model.Bookmark) (bool, error)

	// Exists reports whether a bookmark exists for the pair
	Exists(ctx context.Context, documentID types.DocumentID, entryID types.EntryID) (bool, error)

	// List retrieves all bookmarks, newest first
	List(ctx context.Context) ([]*model.Bookmark, error)
}
