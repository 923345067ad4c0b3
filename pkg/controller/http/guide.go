package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/ems-lab/cpgnav/pkg/utils/errutil"
)

func entryRefs(entries []*model.Entry) []model.EntryRef {
	refs := make([]model.EntryRef, len(entries))
	for i, e := range entries {
		refs[i] = e.Ref()
	}
	return refs
}

func (s *Server) documentHandler(w http.ResponseWriter, r *http.Request) {
	store := s.uc.Guide.Store()
	respondJSON(w, r, map[string]any{
		"document_id": store.DocumentID(),
		"title":       store.Title(),
		"version":     store.Version(),
		"source_url":  store.SourceURL(),
		"sections":    store.Len(),
	})
}

func (s *Server) resolveHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	entry, err := s.uc.Guide.Resolve(r.Context(), query)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if entry == nil {
		respondJSON(w, r, map[string]any{"found": false})
		return
	}

	respondJSON(w, r, map[string]any{
		"found":   true,
		"section": entry.Ref(),
	})
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	entries, err := s.uc.Guide.Search(r.Context(), query, category)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, map[string]any{
		"total":    len(entries),
		"sections": entryRefs(entries),
	})
}

func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, map[string]any{
		"categories": s.uc.Guide.Categories(),
	})
}

func (s *Server) categorySectionsHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	entries := s.uc.Guide.CategorySections(name)
	if len(entries) == 0 {
		errutil.HandleHTTP(r.Context(), w, goerr.New("category not found", goerr.V("name", name)), http.StatusNotFound)
		return
	}

	respondJSON(w, r, map[string]any{
		"category": entries[0].Category,
		"sections": entryRefs(entries),
	})
}

func (s *Server) sectionHandler(w http.ResponseWriter, r *http.Request) {
	id := types.EntryID(chi.URLParam(r, "id"))

	entry, err := s.uc.Guide.Section(id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
		return
	}

	respondJSON(w, r, map[string]any{
		"id":       entry.ID,
		"title":    entry.Title,
		"category": entry.Category,
		"page":     entry.Page,
		"keywords": entry.Keywords,
	})
}

func (s *Server) openHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SectionID string `json:"section_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if req.SectionID == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("section_id is required"), http.StatusBadRequest)
		return
	}

	target, err := s.uc.Guide.Open(r.Context(), types.EntryID(req.SectionID))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, taxonomy.ErrNotFound) {
			status = http.StatusNotFound
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	respondJSON(w, r, target)
}

func (s *Server) featuresHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, map[string]any{
		"features": s.uc.Guide.Features(),
	})
}

func (s *Server) featureHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	feature, err := s.uc.Guide.OpenFeature(id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
		return
	}

	respondJSON(w, r, feature)
}
