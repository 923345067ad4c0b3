package guide

import (
	"context"
	"fmt"
	"time"

	"github.com/ems-lab/cpgnav/pkg/agent/tool"
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/service/match"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/ems-lab/cpgnav/pkg/utils/logging"
	"github.com/m-mizutani/gollem"
)

// openSectionTool resolves a free-text query to one section and opens it
type openSectionTool struct {
	store  *taxonomy.Store
	engine *match.Engine
	repo   interfaces.Repository
}

func (t *openSectionTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "guide__open_section",
		Description: "Resolve a condition, drug, or section number to the single best matching guideline section and open it",
		Parameters: map[string]*gollem.Parameter{
			"query": {
				Type:        gollem.TypeString,
				Description: "What the user is looking for, e.g. 'cardiac arrest', 'naloxone', '4.1'",
				Required:    true,
			},
		},
	}
}

func (t *openSectionTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	tool.Update(ctx, fmt.Sprintf("Resolving: %s", query))

	entry := t.engine.Resolve(query)
	if entry == nil {
		return map[string]any{
			"found":   false,
			"message": "no section matches the query",
		}, nil
	}

	access := &model.RecentAccess{
		DocumentID: t.store.DocumentID(),
		EntryID:    entry.ID,
		Title:      entry.Title,
		AccessedAt: time.Now().UTC(),
	}
	if err := t.repo.Recent().Record(ctx, access); err != nil {
		logging.From(ctx).Warn("failed to record recent access",
			"entryID", entry.ID,
			"error", err.Error(),
		)
	}

	tool.Update(ctx, fmt.Sprintf("Opening %s: %s (p.%d)", entry.ID, entry.Title, entry.Page))

	result := entryPayload(entry)
	result["found"] = true
	result["document_id"] = t.store.DocumentID().String()
	return result, nil
}

// searchSectionsTool lists every section matching a query
type searchSectionsTool struct {
	engine *match.Engine
}

func (t *searchSectionsTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "guide__search_sections",
		Description: "Search guideline sections by title or keyword, optionally scoped to one category. Use when the request is broad or ambiguous.",
		Parameters: map[string]*gollem.Parameter{
			"query": {
				Type:        gollem.TypeString,
				Description: "Search text",
				Required:    true,
			},
			"category": {
				Type:        gollem.TypeString,
				Description: "Restrict results to this category (exact name)",
				Required:    false,
			},
		},
	}
}

func (t *searchSectionsTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	category, _ := args["category"].(string)

	tool.Update(ctx, fmt.Sprintf("Searching: %s", query))

	results := t.engine.Search(query, category)

	shown := results
	if len(shown) > match.DisplayLimit {
		shown = shown[:match.DisplayLimit]
	}

	items := make([]map[string]any, len(shown))
	for i, e := range shown {
		items[i] = entryPayload(e)
	}
	return map[string]any{
		"total":    len(results),
		"shown":    len(items),
		"sections": items,
	}, nil
}
