// Package memory provides the in-memory session memory backend. It is the
// default backend: the reference behavior does not persist session state
// beyond the process lifetime.
package memory

import (
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
)

type Memory struct {
	bookmark *bookmarkRepository
	recent   *recentRepository
	favorite *favoriteRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		bookmark: newBookmarkRepository(),
		recent:   newRecentRepository(),
		favorite: newFavoriteRepository(),
	}
}

func (m *Memory) Bookmark() interfaces.BookmarkRepository {
	return m.bookmark
}

func (m *Memory) Recent() interfaces.RecentRepository {
	return m.recent
}

func (m *Memory) Favorite() interfaces.FavoriteRepository {
	return m.favorite
}

func (m *Memory) Close() error {
	return nil
}
