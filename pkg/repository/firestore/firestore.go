// Package firestore provides a Firestore-backed session memory backend for
// deployments that want bookmarks, recents and favorites to survive restarts.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Firestore struct {
	client   *firestore.Client
	bookmark *bookmarkRepository
	recent   *recentRepository
	favorite *favoriteRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes all collection names. Used by tests to
// isolate runs against a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.bookmark.collectionPrefix = prefix
		f.recent.collectionPrefix = prefix
		f.favorite.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:   client,
		bookmark: newBookmarkRepository(client),
		recent:   newRecentRepository(client),
		favorite: newFavoriteRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Bookmark() interfaces.BookmarkRepository {
	return f.bookmark
}

func (f *Firestore) Recent() interfaces.RecentRepository {
	return f.recent
}

func (f *Firestore) Favorite() interfaces.FavoriteRepository {
	return f.favorite
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
