// Package guide provides the agent tools that expose section lookup and
// session memory to the conversational front-end.
package guide

import (
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/service/match"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/m-mizutani/gollem"
)

// New builds the guide tools for the chat agent: section resolution, search,
// category browsing, app feature routing, and session memory access.
func New(store *taxonomy.Store, repo interfaces.Repository) []gollem.Tool {
	engine := match.New(store)

	return []gollem.Tool{
		&openSectionTool{store: store, engine: engine, repo: repo},
		&searchSectionsTool{engine: engine},
		&listCategoriesTool{store: store},
		&openFeatureTool{},
		&toggleBookmarkTool{store: store, repo: repo},
		&listBookmarksTool{repo: repo},
		&listRecentTool{repo: repo},
	}
}

func entryPayload(e *model.Entry) map[string]any {
	return map[string]any{
		"section_id": e.ID.String(),
		"title":      e.Title,
		"category":   e.Category,
		"page":       e.Page,
	}
}
