package guide_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/ems-lab/cpgnav/pkg/agent/tool"
	"github.com/ems-lab/cpgnav/pkg/agent/tool/guide"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/repository/memory"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
)

// newCtxWithUpdateCapture returns a context that captures all update messages
// and a pointer to the slice where they are appended.
func newCtxWithUpdateCapture() (context.Context, *[]string) {
	var messages []string
	ctx := tool.WithUpdate(context.Background(), func(_ context.Context, msg string) {
		messages = append(messages, msg)
	})
	return ctx, &messages
}

func newTestStore(t *testing.T) *taxonomy.Store {
	t.Helper()
	store, err := taxonomy.New("hmcas-cpg-2.4", []*model.Entry{
		{ID: "cpg-2.1", Title: "Adult Medical Cardiac Arrest", Category: "Cardiac Arrest", Page: 34,
			Keywords: []string{"2.1", "adult cardiac arrest", "cpr", "adrenaline"}},
		{ID: "cpg-4.1", Title: "Acute Coronary Syndrome", Category: "Cardiac", Page: 65,
			Keywords: []string{"4.1", "acs", "stemi", "chest pain", "aspirin"}},
		{ID: "cpg-5.1", Title: "Asthma", Category: "Respiratory", Page: 80,
			Keywords: []string{"5.1", "asthma", "wheeze", "salbutamol"}},
		{ID: "cpg-8.6", Title: "Opioids", Category: "Toxicology", Page: 137,
			Keywords: []string{"8.6", "opioid", "overdose", "naloxone", "narcan"}},
	}, taxonomy.WithDocumentMeta("HMCAS Clinical Practice Guidelines v2.4 (2025)", "2.4", ""))
	gt.NoError(t, err)
	return store
}

func findTool(t *testing.T, tools []gollem.Tool, name string) gollem.Tool {
	t.Helper()
	for _, tl := range tools {
		if tl.Spec().Name == name {
			return tl
		}
	}
	t.Fatalf("tool not found: %s", name)
	return nil
}

func TestOpenSectionTool(t *testing.T) {
	store := newTestStore(t)
	repo := memory.New()
	tools := guide.New(store, repo)
	openSection := findTool(t, tools, "guide__open_section")

	t.Run("ResolveByKeyword", func(t *testing.T) {
		ctx, messages := newCtxWithUpdateCapture()
		result, err := openSection.Run(ctx, map[string]any{"query": "naloxone"})
		gt.NoError(t, err)

		gt.Value(t, result["found"]).Equal(true)
		gt.Value(t, result["section_id"]).Equal("cpg-8.6")
		gt.Value(t, result["title"]).Equal("Opioids")
		gt.Value(t, result["page"]).Equal(137)
		gt.Value(t, result["document_id"]).Equal("hmcas-cpg-2.4")
		gt.Array(t, *messages).Length(2)
	})

	t.Run("RecordsRecentAccess", func(t *testing.T) {
		ctx := context.Background()
		_, err := openSection.Run(ctx, map[string]any{"query": "asthma"})
		gt.NoError(t, err)

		recents, err := repo.Recent().List(ctx)
		gt.NoError(t, err)
		gt.Value(t, recents[0].EntryID.String()).Equal("cpg-5.1")
	})

	t.Run("NoMatch", func(t *testing.T) {
		result, err := openSection.Run(context.Background(), map[string]any{"query": "zzzzz"})
		gt.NoError(t, err)
		gt.Value(t, result["found"]).Equal(false)
	})

	t.Run("MissingQuery", func(t *testing.T) {
		_, err := openSection.Run(context.Background(), map[string]any{})
		gt.Error(t, err)
	})
}

func TestSearchSectionsTool(t *testing.T) {
	store := newTestStore(t)
	tools := guide.New(store, memory.New())
	search := findTool(t, tools, "guide__search_sections")

	t.Run("MatchByKeyword", func(t *testing.T) {
		result, err := search.Run(context.Background(), map[string]any{"query": "chest pain"})
		gt.NoError(t, err)
		gt.Value(t, result["total"]).Equal(1)

		sections := result["sections"].([]map[string]any)
		gt.Array(t, sections).Length(1)
		gt.Value(t, sections[0]["section_id"]).Equal("cpg-4.1")
	})

	t.Run("CategoryScope", func(t *testing.T) {
		result, err := search.Run(context.Background(), map[string]any{
			"query":    "arrest",
			"category": "Respiratory",
		})
		gt.NoError(t, err)
		gt.Value(t, result["total"]).Equal(0)
	})

	t.Run("MissingQuery", func(t *testing.T) {
		_, err := search.Run(context.Background(), map[string]any{})
		gt.Error(t, err)
	})
}

func TestListCategoriesTool(t *testing.T) {
	store := newTestStore(t)
	tools := guide.New(store, memory.New())
	listCategories := findTool(t, tools, "guide__list_categories")

	result, err := listCategories.Run(context.Background(), map[string]any{})
	gt.NoError(t, err)

	categories := result["categories"].([]map[string]any)
	gt.Array(t, categories).Length(4)
	gt.Value(t, categories[0]["name"]).Equal("Cardiac Arrest")
	gt.Value(t, categories[0]["count"]).Equal(1)
}

func TestOpenFeatureTool(t *testing.T) {
	store := newTestStore(t)
	tools := guide.New(store, memory.New())
	openFeature := findTool(t, tools, "guide__open_feature")

	t.Run("KnownFeature", func(t *testing.T) {
		result, err := openFeature.Run(context.Background(), map[string]any{"feature_id": "cpr"})
		gt.NoError(t, err)
		gt.Value(t, result["route"]).Equal("/cpr")
		gt.Value(t, result["title"]).Equal("CPR Timer")
	})

	t.Run("UnknownFeature", func(t *testing.T) {
		_, err := openFeature.Run(context.Background(), map[string]any{"feature_id": "nope"})
		gt.Error(t, err)
	})
}

func TestBookmarkTools(t *testing.T) {
	store := newTestStore(t)
	repo := memory.New()
	tools := guide.New(store, repo)
	toggle := findTool(t, tools, "guide__toggle_bookmark")
	list := findTool(t, tools, "guide__list_bookmarks")
	ctx := context.Background()

	result, err := toggle.Run(ctx, map[string]any{"section_id": "cpg-2.1"})
	gt.NoError(t, err)
	gt.Value(t, result["added"]).Equal(true)
	gt.Value(t, result["removed"]).Equal(false)

	listed, err := list.Run(ctx, map[string]any{})
	gt.NoError(t, err)
	bookmarks := listed["bookmarks"].([]map[string]any)
	gt.Array(t, bookmarks).Length(1)
	gt.Value(t, bookmarks[0]["section_id"]).Equal("cpg-2.1")

	result, err = toggle.Run(ctx, map[string]any{"section_id": "cpg-2.1"})
	gt.NoError(t, err)
	gt.Value(t, result["added"]).Equal(false)
	gt.Value(t, result["removed"]).Equal(true)

	t.Run("UnknownSection", func(t *testing.T) {
		_, err := toggle.Run(ctx, map[string]any{"section_id": "cpg-99.9"})
		gt.Error(t, err)
	})
}

func TestListRecentTool(t *testing.T) {
	store := newTestStore(t)
	repo := memory.New()
	tools := guide.New(store, repo)
	openSection := findTool(t, tools, "guide__open_section")
	listRecent := findTool(t, tools, "guide__list_recent")
	ctx := context.Background()

	_, err := openSection.Run(ctx, map[string]any{"query": "asthma"})
	gt.NoError(t, err)
	_, err = openSection.Run(ctx, map[string]any{"query": "2.1"})
	gt.NoError(t, err)

	result, err := listRecent.Run(ctx, map[string]any{})
	gt.NoError(t, err)
	recent := result["recent"].([]map[string]any)
	gt.Array(t, recent).Length(2)
	gt.Value(t, recent[0]["section_id"]).Equal("cpg-2.1")
}
