package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
)

type recentRepository struct {
	mu      sync.RWMutex
	recents []*model.RecentAccess // newest first, length <= model.RecentLimit
}

func newRecentRepository() *recentRepository {
	return &recentRepository{}
}

func copyRecent(a *model.RecentAccess) *model.RecentAccess {
	copied := *a
	return &copied
}

func (r *recentRepository) Record(ctx context.Context, access *model.RecentAccess) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Remove an existing record for the same pair so it moves to the front
	for i, a := range r.recents {
		if a.DocumentID == access.DocumentID && a.EntryID == access.EntryID {
			r.recents = append(r.recents[:i], r.recents[i+1:]...)
			break
		}
	}

	created := copyRecent(access)
	if created.AccessedAt.IsZero() {
		created.AccessedAt = time.Now().UTC()
	}

	r.recents = append([]*model.RecentAccess{created}, r.recents...)
	if len(r.recents) > model.RecentLimit {
		r.recents = r.recents[:model.RecentLimit]
	}
	return nil
}

func (r *recentRepository) List(ctx context.Context) ([]*model.RecentAccess, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.RecentAccess, len(r.recents))
	for i, a := range r.recents {
		out[i] = copyRecent(a)
	}
	return out, nil
}
