package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type favoriteDoc struct {
	EntryID   string    `firestore:"EntryID"`
	CreatedAt time.Time `firestore:"CreatedAt"`
}

type favoriteRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newFavoriteRepository(client *firestore.Client) *favoriteRepository {
	return &favoriteRepository{client: client}
}

func (r *favoriteRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "favorites")
}

func (r *favoriteRepository) Toggle(ctx context.Context, entryID types.EntryID) (bool, error) {
	docRef := r.collection().Doc(entryID.String())

	var added bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(docRef)
		if err == nil {
			added = false
			return tx.Delete(docRef)
		}
		if status.Code(err) != codes.NotFound {
			return err
		}

		added = true
		return tx.Set(docRef, &favoriteDoc{
			EntryID:   entryID.String(),
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to toggle favorite", goerr.V("entryID", entryID))
	}

	return added, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, entryID types.EntryID) (bool, error) {
	_, err := r.collection().Doc(entryID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to check favorite", goerr.V("entryID", entryID))
	}
	return true, nil
}

func (r *favoriteRepository) List(ctx context.Context) ([]*model.Favorite, error) {
	iter := r.collection().OrderBy("CreatedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	favorites := make([]*model.Favorite, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list favorites")
		}

		var d favoriteDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal favorite", goerr.V("doc", doc.Ref.ID))
		}
		favorites = append(favorites, &model.Favorite{
			EntryID:   types.EntryID(d.EntryID),
			CreatedAt: d.CreatedAt,
		})
	}

	return favorites, nil
}
