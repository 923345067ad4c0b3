package interfaces

import (
	"context"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
)

// RecentRepository defines the interface for the bounded recent-access list.
// Implementations must make the remove-then-prepend-then-truncate sequence
// atomic.
type RecentRepository interface {
	// Record inserts the access at the front of the list. If the
	// (DocumentID, EntryID) pair is already present it moves to the front
	// instead of duplicating. The list is truncated to model.RecentLimit.
	Record(ctx context.Context, access *model.RecentAccess) error

	// List retrieves the recent accesses, newest first, at most model.RecentLimit
	List(ctx context.Context) ([]*model.RecentAccess, error)
}
