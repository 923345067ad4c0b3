package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ems-lab/cpgnav/pkg/domain/types"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
	"github.com/ems-lab/cpgnav/pkg/usecase"
	"github.com/ems-lab/cpgnav/pkg/utils/errutil"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}

func sessionStatus(err error) int {
	if errors.Is(err, taxonomy.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) toggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id := types.EntryID(chi.URLParam(r, "id"))

	state, err := s.uc.Session.ToggleBookmark(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, sessionStatus(err))
		return
	}

	respondJSON(w, r, state)
}

func (s *Server) listBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := s.uc.Session.ListBookmarks(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	type bookmarkResponse struct {
		SectionID string    `json:"section_id"`
		Title     string    `json:"title"`
		Page      int       `json:"page"`
		CreatedAt time.Time `json:"created_at"`
	}
	items := make([]bookmarkResponse, len(bookmarks))
	for i, b := range bookmarks {
		items[i] = bookmarkResponse{
			SectionID: b.EntryID.String(),
			Title:     b.Title,
			Page:      b.Page,
			CreatedAt: b.CreatedAt,
		}
	}
	respondJSON(w, r, map[string]any{"bookmarks": items})
}

func (s *Server) listRecentHandler(w http.ResponseWriter, r *http.Request) {
	recents, err := s.uc.Session.ListRecent(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	type recentResponse struct {
		SectionID  string    `json:"section_id"`
		Title      string    `json:"title"`
		AccessedAt time.Time `json:"accessed_at"`
	}
	items := make([]recentResponse, len(recents))
	for i, a := range recents {
		items[i] = recentResponse{
			SectionID:  a.EntryID.String(),
			Title:      a.Title,
			AccessedAt: a.AccessedAt,
		}
	}
	respondJSON(w, r, map[string]any{"recent": items})
}

func (s *Server) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id := types.EntryID(chi.URLParam(r, "id"))

	state, err := s.uc.Session.ToggleFavorite(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, sessionStatus(err))
		return
	}

	respondJSON(w, r, state)
}

func (s *Server) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := s.uc.Session.ListFavorites(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, map[string]any{"favorites": entryRefs(entries)})
}

func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	if !s.uc.Chat.Enabled() {
		errutil.HandleHTTP(r.Context(), w, usecase.ErrChatNotConfigured, http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("message is required"), http.StatusBadRequest)
		return
	}

	reply, err := s.uc.Chat.Chat(r.Context(), req.Message)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, map[string]string{"reply": reply})
}
