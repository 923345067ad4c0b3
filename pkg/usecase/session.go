package usecase

import (
	"context"
	"time"

	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/m-mizutani/goerr/v2"
)

// SessionUseCase manages per-user session memory: bookmarks, the bounded
// recent-access list, and favorites. Section metadata is denormalized into
// bookmark and recent records at write time so listing never needs the store.
type SessionUseCase struct {
	store *taxonomy.Store
	repo  interfaces.Repository
}

func NewSessionUseCase(store *taxonomy.Store, repo interfaces.Repository) *SessionUseCase {
	return &SessionUseCase{
		store: store,
		repo:  repo,
	}
}

// ToggleBookmark adds a bookmark for the section, or removes it when one
// already exists for the same (document, section) pair.
func (uc *SessionUseCase) ToggleBookmark(ctx context.Context, entryID types.EntryID) (*model.BookmarkState, error) {
	entry, err := uc.store.Get(entryID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to toggle bookmark", goerr.V("entryID", entryID))
	}

	bookmark := &model.Bookmark{
		ID:         model.NewBookmarkID(),
		DocumentID: uc.store.DocumentID(),
		EntryID:    entry.ID,
		Title:      entry.Title,
		Page:       entry.Page,
		CreatedAt:  time.Now().UTC(),
	}

	added, err := uc.repo.Bookmark().Toggle(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	return &model.BookmarkState{Added: added, Removed: !added}, nil
}

// IsBookmarked reports whether the section is currently bookmarked
func (uc *SessionUseCase) IsBookmarked(ctx context.Context, entryID types.EntryID) (bool, error) {
	return uc.repo.Bookmark().Exists(ctx, uc.store.DocumentID(), entryID)
}

// ListBookmarks returns all bookmarks, newest first
func (uc *SessionUseCase) ListBookmarks(ctx context.Context) ([]*model.Bookmark, error) {
	return uc.repo.Bookmark().List(ctx)
}

// RecordAccess pushes the section onto the recent list. Re-accessing a
// section moves it to the front without duplicating it.
func (uc *SessionUseCase) RecordAccess(ctx context.Context, entryID types.EntryID) error {
	entry, err := uc.store.Get(entryID)
	if err != nil {
		return goerr.Wrap(err, "failed to record access", goerr.V("entryID", entryID))
	}

	return uc.repo.Recent().Record(ctx, &model.RecentAccess{
		DocumentID: uc.store.DocumentID(),
		EntryID:    entry.ID,
		Title:      entry.Title,
		AccessedAt: time.Now().UTC(),
	})
}

// ListRecent returns the recent-access list, most recent first, at most
// model.RecentLimit entries.
func (uc *SessionUseCase) ListRecent(ctx context.Context) ([]*model.RecentAccess, error) {
	return uc.repo.Recent().List(ctx)
}

// ToggleFavorite adds the section to favorites, or removes it when already
// present.
func (uc *SessionUseCase) ToggleFavorite(ctx context.Context, entryID types.EntryID) (*model.FavoriteState, error) {
	if _, err := uc.store.Get(entryID); err != nil {
		return nil, goerr.Wrap(err, "failed to toggle favorite", goerr.V("entryID", entryID))
	}

	added, err := uc.repo.Favorite().Toggle(ctx, entryID)
	if err != nil {
		return nil, err
	}

	return &model.FavoriteState{Added: added, Removed: !added}, nil
}

// IsFavorite reports whether the section is currently a favorite
func (uc *SessionUseCase) IsFavorite(ctx context.Context, entryID types.EntryID) (bool, error) {
	return uc.repo.Favorite().Exists(ctx, entryID)
}

// ListFavorites returns all favorites, newest first, resolved against the
// store so callers get full section metadata. Favorites whose section no
// longer exists in the loaded dataset are skipped.
func (uc *SessionUseCase) ListFavorites(ctx context.Context) ([]*model.Entry, error) {
	favorites, err := uc.repo.Favorite().List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.Entry, 0, len(favorites))
	for _, f := range favorites {
		entry, err := uc.store.Get(f.EntryID)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
