package guide

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-lab/cpgnav/pkg/agent/tool"
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// toggleBookmarkTool adds or removes a bookmark for one section
type toggleBookmarkTool struct {
	store *taxonomy.Store
	repo  interfaces.Repository
}

func (t *toggleBookmarkTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "guide__toggle_bookmark",
		Description: "Bookmark a section, or remove the bookmark if the section is already bookmarked",
		Parameters: map[string]*gollem.Parameter{
			"section_id": {
				Type:        gollem.TypeString,
				Description: "ID of the section to bookmark, e.g. 'cpg-4.1'",
				Required:    true,
			},
		},
	}
}

func (t *toggleBookmarkTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	sectionID, _ := args["section_id"].(string)
	if sectionID == "" {
		return nil, fmt.Errorf("section_id is required")
	}

	entry, err := t.store.Get(types.EntryID(sectionID))
	if err != nil {
		return nil, fmt.Errorf("section not found: %s", sectionID)
	}

	tool.Update(ctx, fmt.Sprintf("Toggling bookmark: %s", entry.Title))

	added, err := t.repo.Bookmark().Toggle(ctx, &model.Bookmark{
		ID:         model.NewBookmarkID(),
		DocumentID: t.store.DocumentID(),
		EntryID:    entry.ID,
		Title:      entry.Title,
		Page:       entry.Page,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to toggle bookmark", goerr.V("sectionID", sectionID))
	}

	return map[string]any{
		"section_id": entry.ID.String(),
		"title":      entry.Title,
		"added":      added,
		"removed":    !added,
	}, nil
}

// listBookmarksTool lists all bookmarks, newest first
type listBookmarksTool struct {
	repo interfaces.Repository
}

func (t *listBookmarksTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "guide__list_bookmarks",
		Description: "List the user's bookmarked sections, newest first",
		Parameters:  map[string]*gollem.Parameter{},
	}
}

func (t *listBookmarksTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	tool.Update(ctx, "Listing bookmarks")

	bookmarks, err := t.repo.Bookmark().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bookmarks")
	}

	items := make([]map[string]any, len(bookmarks))
	for i, b := range bookmarks {
		items[i] = map[string]any{
			"section_id": b.EntryID.String(),
			"title":      b.Title,
			"page":       b.Page,
		}
	}
	return map[string]any{"bookmarks": items}, nil
}

// listRecentTool lists recently opened sections
type listRecentTool struct {
	repo interfaces.Repository
}

func (t *listRecentTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "guide__list_recent",
		Description: "List the sections the user opened most recently",
		Parameters:  map[string]*gollem.Parameter{},
	}
}

func (t *listRecentTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	tool.Update(ctx, "Listing recent sections")

	recents, err := t.repo.Recent().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list recent sections")
	}

	items := make([]map[string]any, len(recents))
	for i, r := range recents {
		items[i] = map[string]any{
			"section_id":  r.EntryID.String(),
			"title":       r.Title,
			"accessed_at": r.AccessedAt.Format(time.RFC3339),
		}
	}
	return map[string]any{"recent": items}, nil
}
