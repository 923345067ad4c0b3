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

// bookmarkDoc is the Firestore document representation of model.Bookmark.
// The document ID is the (DocumentID, EntryID) pair key, which makes the
// at-most-one-per-pair invariant a property of the schema.
type bookmarkDoc struct {
	ID         model.BookmarkID `firestore:"ID"`
	DocumentID string           `firestore:"DocumentID"`
	EntryID    string           `firestore:"EntryID"`
	Title      string           `firestore:"Title"`
	Page       int              `firestore:"Page"`
	CreatedAt  time.Time        `firestore:"CreatedAt"`
}

func toBookmarkDoc(b *model.Bookmark) *bookmarkDoc {
	return &bookmarkDoc{
		ID:         b.ID,
		DocumentID: b.DocumentID.String(),
		EntryID:    b.EntryID.String(),
		Title:      b.Title,
		Page:       b.Page,
		CreatedAt:  b.CreatedAt,
	}
}

func fromBookmarkDoc(d *bookmarkDoc) *model.Bookmark {
	return &model.Bookmark{
		ID:         d.ID,
		DocumentID: types.DocumentID(d.DocumentID),
		EntryID:    types.EntryID(d.EntryID),
		Title:      d.Title,
		Page:       d.Page,
		CreatedAt:  d.CreatedAt,
	}
}

type bookmarkRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newBookmarkRepository(client *firestore.Client) *bookmarkRepository {
	return &bookmarkRepository{client: client}
}

func (r *bookmarkRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "bookmarks")
}

func pairKey(documentID types.DocumentID, entryID types.EntryID) string {
	return documentID.String() + "__" + entryID.String()
}

func (r *bookmarkRepository) Toggle(ctx context.Context, bookmark *model.Bookmark) (bool, error) {
	docRef := r.collection().Doc(pairKey(bookmark.DocumentID, bookmark.EntryID))

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

		created := *bookmark
		if created.ID == "" {
			created.ID = model.NewBookmarkID()
		}
		if created.CreatedAt.IsZero() {
			created.CreatedAt = time.Now().UTC()
		}
		added = true
		return tx.Set(docRef, toBookmarkDoc(&created))
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to toggle bookmark",
			goerr.V("documentID", bookmark.DocumentID),
			goerr.V("entryID", bookmark.EntryID),
		)
	}

	return added, nil
}

func (r *bookmarkRepository) Exists(ctx context.Context, documentID types.DocumentID, entryID types.EntryID) (bool, error) {
	_, err := r.collection().Doc(pairKey(documentID, entryID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to check bookmark",
			goerr.V("documentID", documentID),
			goerr.V("entryID", entryID),
		)
	}
	return true, nil
}

func (r *bookmarkRepository) List(ctx context.Context) ([]*model.Bookmark, error) {
	iter := r.collection().OrderBy("CreatedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	bookmarks := make([]*model.Bookmark, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list bookmarks")
		}

		var d bookmarkDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal bookmark", goerr.V("doc", doc.Ref.ID))
		}
		bookmarks = append(bookmarks, fromBookmarkDoc(&d))
	}

	return bookmarks, nil
}
