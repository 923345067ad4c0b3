package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ems-lab/cpgnav/pkg/repository/memory"
	"github.com/ems-lab/cpgnav/pkg/usecase"
)

func TestSessionBookmarks(t *testing.T) {
	uc := usecase.New(memory.New(), newTestStore(t))
	ctx := context.Background()

	state, err := uc.Session.ToggleBookmark(ctx, "cpg-2.1")
	gt.NoError(t, err)
	gt.Value(t, state.Added).Equal(true)
	gt.Value(t, state.Removed).Equal(false)

	bookmarked, err := uc.Session.IsBookmarked(ctx, "cpg-2.1")
	gt.NoError(t, err)
	gt.Value(t, bookmarked).Equal(true)

	bookmarks, err := uc.Session.ListBookmarks(ctx)
	gt.NoError(t, err)
	gt.Array(t, bookmarks).Length(1)
	gt.Value(t, bookmarks[0].Title).Equal("Adult Medical Cardiac Arrest")
	gt.Value(t, bookmarks[0].Page).Equal(34)

	state, err = uc.Session.ToggleBookmark(ctx, "cpg-2.1")
	gt.NoError(t, err)
	gt.Value(t, state.Added).Equal(false)
	gt.Value(t, state.Removed).Equal(true)

	bookmarked, err = uc.Session.IsBookmarked(ctx, "cpg-2.1")
	gt.NoError(t, err)
	gt.Value(t, bookmarked).Equal(false)

	t.Run("UnknownSection", func(t *testing.T) {
		_, err := uc.Session.ToggleBookmark(ctx, "cpg-99.1")
		gt.Error(t, err)
	})
}

func TestSessionRecent(t *testing.T) {
	uc := usecase.New(memory.New(), newTestStore(t))
	ctx := context.Background()

	gt.NoError(t, uc.Session.RecordAccess(ctx, "cpg-1.6"))
	gt.NoError(t, uc.Session.RecordAccess(ctx, "cpg-2.1"))
	gt.NoError(t, uc.Session.RecordAccess(ctx, "cpg-1.6"))

	recents, err := uc.Session.ListRecent(ctx)
	gt.NoError(t, err)
	gt.Array(t, recents).Length(2)
	gt.Value(t, recents[0].EntryID.String()).Equal("cpg-1.6")
	gt.Value(t, recents[1].EntryID.String()).Equal("cpg-2.1")

	t.Run("UnknownSection", func(t *testing.T) {
		gt.Error(t, uc.Session.RecordAccess(ctx, "cpg-99.1"))
	})
}

func TestSessionFavorites(t *testing.T) {
	uc := usecase.New(memory.New(), newTestStore(t))
	ctx := context.Background()

	state, err := uc.Session.ToggleFavorite(ctx, "cpg-6.2")
	gt.NoError(t, err)
	gt.Value(t, state.Added).Equal(true)

	favorite, err := uc.Session.IsFavorite(ctx, "cpg-6.2")
	gt.NoError(t, err)
	gt.Value(t, favorite).Equal(true)

	entries, err := uc.Session.ListFavorites(ctx)
	gt.NoError(t, err)
	gt.Array(t, entries).Length(1)
	gt.Value(t, entries[0].Title).Equal("Anaphylaxis and Allergic Reactions")

	state, err = uc.Session.ToggleFavorite(ctx, "cpg-6.2")
	gt.NoError(t, err)
	gt.Value(t, state.Removed).Equal(true)

	t.Run("UnknownSection", func(t *testing.T) {
		_, err := uc.Session.ToggleFavorite(ctx, "cpg-99.1")
		gt.Error(t, err)
	})
}

func TestChatNotConfigured(t *testing.T) {
	uc := usecase.New(memory.New(), newTestStore(t))

	gt.Value(t, uc.Chat.Enabled()).Equal(false)
	_, err := uc.Chat.Chat(context.Background(), "open cardiac arrest")
	gt.Error(t, err)
}
