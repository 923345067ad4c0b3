package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
)

type favoriteRepository struct {
	mu        sync.RWMutex
	favorites []*model.Favorite // newest first
}

func newFavoriteRepository() *favoriteRepository {
	return &favoriteRepository{}
}

func (r *favoriteRepository) Toggle(ctx context.Context, entryID types.EntryID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.favorites {
		if f.EntryID == entryID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return false, nil
		}
	}

	r.favorites = append([]*model.Favorite{{
		EntryID:   entryID,
		CreatedAt: time.Now().UTC(),
	}}, r.favorites...)
	return true, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, entryID types.EntryID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.favorites {
		if f.EntryID == entryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *favoriteRepository) List(ctx context.Context) ([]*model.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Favorite, len(r.favorites))
	for i, f := range r.favorites {
		copied := *f
		out[i] = &copied
	}
	return out, nil
}
