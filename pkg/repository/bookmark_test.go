package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/ems-lab/cpgnav/pkg/repository/firestore"
	"github.com/ems-lab/cpgnav/pkg/repository/memory"
)

const testDocumentID = types.DocumentID("hmcas-cpg-2.4")

func newBookmark(entryID types.EntryID, title string, page int) *model.Bookmark {
	return &model.Bookmark{
		ID:         model.NewBookmarkID(),
		DocumentID: testDocumentID,
		EntryID:    entryID,
		Title:      title,
		Page:       page,
		CreatedAt:  time.Now().UTC(),
	}
}

func runBookmarkRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	ctx := context.Background()

	t.Run("ToggleAddsThenRemoves", func(t *testing.T) {
		repo := newRepo(t)
		bookmark := newBookmark("cpg-4.1", "Acute Coronary Syndrome", 65)

		added, err := repo.Bookmark().Toggle(ctx, bookmark)
		if err != nil {
			t.Fatalf("failed to toggle bookmark: %v", err)
		}
		if !added {
			t.Error("expected first toggle to add")
		}

		exists, err := repo.Bookmark().Exists(ctx, bookmark.DocumentID, bookmark.EntryID)
		if err != nil {
			t.Fatalf("failed to check bookmark: %v", err)
		}
		if !exists {
			t.Error("expected bookmark to exist after add")
		}

		added, err = repo.Bookmark().Toggle(ctx, newBookmark("cpg-4.1", "Acute Coronary Syndrome", 65))
		if err != nil {
			t.Fatalf("failed to toggle bookmark: %v", err)
		}
		if added {
			t.Error("expected second toggle to remove")
		}

		exists, err = repo.Bookmark().Exists(ctx, bookmark.DocumentID, bookmark.EntryID)
		if err != nil {
			t.Fatalf("failed to check bookmark: %v", err)
		}
		if exists {
			t.Error("expected bookmark to be gone after removal")
		}
	})

	t.Run("ExistsForUnknownPair", func(t *testing.T) {
		repo := newRepo(t)

		exists, err := repo.Bookmark().Exists(ctx, testDocumentID, "cpg-13.4")
		if err != nil {
			t.Fatalf("failed to check bookmark: %v", err)
		}
		if exists {
			t.Error("expected no bookmark for untouched pair")
		}
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		repo := newRepo(t)

		entries := []struct {
			id    types.EntryID
			title string
			page  int
		}{
			{"cpg-2.1", "Adult Medical Cardiac Arrest", 34},
			{"cpg-3.1", "Stroke", 58},
			{"cpg-5.1", "Asthma", 80},
		}
		base := time.Now().UTC().Add(-time.Minute)
		for i, e := range entries {
			b := newBookmark(e.id, e.title, e.page)
			b.CreatedAt = base.Add(time.Duration(i) * time.Second)
			if _, err := repo.Bookmark().Toggle(ctx, b); err != nil {
				t.Fatalf("failed to toggle bookmark: %v", err)
			}
		}

		bookmarks, err := repo.Bookmark().List(ctx)
		if err != nil {
			t.Fatalf("failed to list bookmarks: %v", err)
		}
		if len(bookmarks) != 3 {
			t.Fatalf("expected 3 bookmarks, got %d", len(bookmarks))
		}
		if bookmarks[0].EntryID != "cpg-5.1" {
			t.Errorf("expected newest bookmark first, got %s", bookmarks[0].EntryID)
		}
		if bookmarks[2].EntryID != "cpg-2.1" {
			t.Errorf("expected oldest bookmark last, got %s", bookmarks[2].EntryID)
		}
		if bookmarks[0].Title != "Asthma" || bookmarks[0].Page != 80 {
			t.Errorf("unexpected bookmark payload: %+v", bookmarks[0])
		}
	})

	t.Run("ListEmpty", func(t *testing.T) {
		repo := newRepo(t)

		bookmarks, err := repo.Bookmark().List(ctx)
		if err != nil {
			t.Fatalf("failed to list bookmarks: %v", err)
		}
		if len(bookmarks) != 0 {
			t.Errorf("expected empty list, got %d", len(bookmarks))
		}
	})
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d_", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func TestMemoryBookmarkRepository(t *testing.T) {
	runBookmarkRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreBookmarkRepository(t *testing.T) {
	runBookmarkRepositoryTest(t, newFirestoreRepository)
}
