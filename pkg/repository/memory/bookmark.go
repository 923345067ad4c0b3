package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
)

type bookmarkRepository struct {
	mu        sync.RWMutex
	bookmarks []*model.Bookmark // newest first
}

func newBookmarkRepository() *bookmarkRepository {
	return &bookmarkRepository{}
}

func copyBookmark(b *model.Bookmark) *model.Bookmark {
	copied := *b
	return &copied
}

func (r *bookmarkRepository) Toggle(ctx context.Context, bookmark *model.Bookmark) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookmarks {
		if b.DocumentID == bookmark.DocumentID && b.EntryID == bookmark.EntryID {
			r.bookmarks = append(r.bookmarks[:i], r.bookmarks[i+1:]...)
			return false, nil
		}
	}

	created := copyBookmark(bookmark)
	if created.ID == "" {
		created.ID = model.NewBookmarkID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.bookmarks = append([]*model.Bookmark{created}, r.bookmarks...)
	return true, nil
}

func (r *bookmarkRepository) Exists(ctx context.Context, documentID types.DocumentID, entryID types.EntryID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookmarks {
		if b.DocumentID == documentID && b.EntryID == entryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *bookmarkRepository) List(ctx context.Context) ([]*model.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Bookmark, len(r.bookmarks))
	for i, b := range r.bookmarks {
		out[i] = copyBookmark(b)
	}
	return out, nil
}
