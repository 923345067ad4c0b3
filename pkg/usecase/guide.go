package usecase

import (
	"context"
	"time"

	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/ems-lab/cpgnav/pkg/service/match"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/ems-lab/cpgnav/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// GuideUseCase answers section lookup requests: resolving a free-text query
// to one section, searching, browsing by category, and opening a section as a
// navigation target.
type GuideUseCase struct {
	store  *taxonomy.Store
	engine *match.Engine
	repo   interfaces.Repository
}

func NewGuideUseCase(store *taxonomy.Store, repo interfaces.Repository) *GuideUseCase {
	return &GuideUseCase{
		store:  store,
		engine: match.New(store),
		repo:   repo,
	}
}

// Resolve maps a free-text query to the single section it most likely means.
// Returns nil when nothing matches; that is an answerable outcome for the
// caller, not an error.
func (uc *GuideUseCase) Resolve(ctx context.Context, query string) (*model.Entry, error) {
	return uc.engine.Resolve(query), nil
}

// Search returns every section matching the query in dataset order, scoped to
// a category when one is given. Callers showing a preview truncate to
// match.DisplayLimit themselves.
func (uc *GuideUseCase) Search(ctx context.Context, query, category string) ([]*model.Entry, error) {
	return uc.engine.Search(query, category), nil
}

// Section retrieves one section by ID
func (uc *GuideUseCase) Section(entryID types.EntryID) (*model.Entry, error) {
	return uc.store.Get(entryID)
}

// Categories returns every category with its section count, in dataset order
func (uc *GuideUseCase) Categories() []model.CategoryCount {
	return uc.store.Categories()
}

// CategorySections returns the sections of one category in dataset order
func (uc *GuideUseCase) CategorySections(category string) []*model.Entry {
	return uc.store.ByCategory(category)
}

// Open turns a section into a navigation target and records the access in
// the recent list. A recording failure does not block navigation; it is
// logged and the target is still returned.
func (uc *GuideUseCase) Open(ctx context.Context, entryID types.EntryID) (*model.NavigationTarget, error) {
	entry, err := uc.store.Get(entryID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open section", goerr.V("entryID", entryID))
	}

	target, err := model.NewNavigationTarget(uc.store.DocumentID(), entry)
	if err != nil {
		return nil, err
	}

	access := &model.RecentAccess{
		DocumentID: uc.store.DocumentID(),
		EntryID:    entry.ID,
		Title:      entry.Title,
		AccessedAt: time.Now().UTC(),
	}
	if err := uc.repo.Recent().Record(ctx, access); err != nil {
		logging.From(ctx).Warn("failed to record recent access",
			"entryID", entry.ID,
			"error", err.Error(),
		)
	}

	return target, nil
}

// OpenFeature resolves an app feature ID to its registry entry
func (uc *GuideUseCase) OpenFeature(id string) (*model.AppFeature, error) {
	feature := model.FindAppFeature(id)
	if feature == nil {
		return nil, goerr.Wrap(ErrFeatureNotFound, "unknown feature", goerr.V("id", id))
	}
	return feature, nil
}

// Features returns the full app feature registry
func (uc *GuideUseCase) Features() []model.AppFeature {
	return model.AppFeatures()
}

// Store returns the underlying taxonomy store for read-only access to
// document metadata
func (uc *GuideUseCase) Store() *taxonomy.Store {
	return uc.store
}
