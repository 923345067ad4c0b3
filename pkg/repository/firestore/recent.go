package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

// recentDoc uses the pair key as document ID, so re-recording the same pair
// overwrites the old record instead of duplicating it. Ordering and the
// length bound are enforced at read/record time via AccessedAt.
type recentDoc struct {
	DocumentID string    `firestore:"DocumentID"`
	EntryID    string    `firestore:"EntryID"`
	Title      string    `firestore:"Title"`
	AccessedAt time.Time `firestore:"AccessedAt"`
}

type recentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRecentRepository(client *firestore.Client) *recentRepository {
	return &recentRepository{client: client}
}

func (r *recentRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "recents")
}

func (r *recentRepository) Record(ctx context.Context, access *model.RecentAccess) error {
	accessedAt := access.AccessedAt
	if accessedAt.IsZero() {
		accessedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(pairKey(access.DocumentID, access.EntryID))
	if _, err := docRef.Set(ctx, &recentDoc{
		DocumentID: access.DocumentID.String(),
		EntryID:    access.EntryID.String(),
		Title:      access.Title,
		AccessedAt: accessedAt,
	}); err != nil {
		return goerr.Wrap(err, "failed to record access",
			goerr.V("documentID", access.DocumentID),
			goerr.V("entryID", access.EntryID),
		)
	}

	return r.truncate(ctx)
}

// truncate deletes records beyond the recent limit, oldest first
func (r *recentRepository) truncate(ctx context.Context) error {
	iter := r.collection().
		OrderBy("AccessedAt", firestore.Desc).
		Offset(model.RecentLimit).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to scan recents for truncation")
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete stale recent", goerr.V("doc", doc.Ref.ID))
		}
	}

	return nil
}

func (r *recentRepository) List(ctx context.Context) ([]*model.RecentAccess, error) {
	iter := r.collection().
		OrderBy("AccessedAt", firestore.Desc).
		Limit(model.RecentLimit).
		Documents(ctx)
	defer iter.Stop()

	recents := make([]*model.RecentAccess, 0, model.RecentLimit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list recents")
		}

		var d recentDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal recent", goerr.V("doc", doc.Ref.ID))
		}
		recents = append(recents, &model.RecentAccess{
			DocumentID: types.DocumentID(d.DocumentID),
			EntryID:    types.EntryID(d.EntryID),
			Title:      d.Title,
			AccessedAt: d.AccessedAt,
		})
	}

	return recents, nil
}
