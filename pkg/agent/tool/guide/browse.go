package guide

import (
	"context"
	"fmt"

	"github.com/ems-lab/cpgnav/pkg/agent/tool"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/m-mizutani/gollem"
)

// listCategoriesTool lists every category with its section count
type listCategoriesTool struct {
	store *taxonomy.Store
}

func (t *listCategoriesTool) Spec() gollem.ToolSpec {
	return gollem.ToolSpec{
		Name:        "guide__list_categories",
		Description: "List every guideline category with its section count",
		Parameters:  map[string]*gollem.Parameter{},
	}
}

func (t *listCategoriesTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	tool.Update(ctx, "Listing categories")

	categories := t.store.Categories()
	items := make([]map[string]any, len(categories))
	for i, c := range categories {
		items[i] = map[string]any{
			"name":  c.Name,
			"count": c.Count,
		}
	}
	return map[string]any{"categories": items}, nil
}

// openFeatureTool routes the user to a non-guideline app feature
type openFeatureTool struct{}

func (t *openFeatureTool) Spec() gollem.ToolSpec {
	features := model.AppFeatures()
	ids := make([]string, len(features))
	for i, f := range features {
		ids[i] = f.ID
	}

	return gollem.ToolSpec{
		Name:        "guide__open_feature",
		Description: "Open a non-guideline app feature such as a calculator, timer, or scoring tool",
		Parameters: map[string]*gollem.Parameter{
			"feature_id": {
				Type:        gollem.TypeString,
				Description: "Feature to open",
				Enum:        ids,
				Required:    true,
			},
		},
	}
}

func (t *openFeatureTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	featureID, _ := args["feature_id"].(string)
	if featureID == "" {
		return nil, fmt.Errorf("feature_id is required")
	}

	feature := model.FindAppFeature(featureID)
	if feature == nil {
		return nil, fmt.Errorf("unknown feature: %s", featureID)
	}

	tool.Update(ctx, fmt.Sprintf("Opening feature: %s", feature.Title))

	return map[string]any{
		"feature_id":  feature.ID,
		"title":       feature.Title,
		"route":       feature.Route,
		"description": feature.Description,
	}, nil
}
