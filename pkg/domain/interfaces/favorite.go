package interfaces

import (
	"context"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
)

// FavoriteRepository defines the interface for favorite persistence.
// Favorites are cross-document, keyed by entry ID only.
type FavoriteRepository interface {
	// Toggle inserts the favorite if absent, removes it if present.
	// Returns true when added, false when removed.
	Toggle(ctx context.Context, entryID types.EntryID) (bool, error)

	// Exists reports whether the entry is a favorite
	Exists(ctx context.Context, entryID types.EntryID) (bool, error)

	// List retrieves all favorites, newest first
	List(ctx context.Context) ([]*model.Favorite, error)
}
