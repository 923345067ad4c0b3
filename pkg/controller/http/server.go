// Package http exposes the section lookup and session memory operations as a
// JSON API for the mobile client.
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ems-lab/cpgnav/pkg/usecase"
	"github.com/ems-lab/cpgnav/pkg/utils/errutil"
	"github.com/ems-lab/cpgnav/pkg/utils/logging"
	"github.com/ems-lab/cpgnav/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/document", s.documentHandler)
		r.Get("/resolve", s.resolveHandler)
		r.Get("/search", s.searchHandler)
		r.Get("/categories", s.categoriesHandler)
		r.Get("/categories/{name}", s.categorySectionsHandler)
		r.Get("/sections/{id}", s.sectionHandler)
		r.Post("/open", s.openHandler)

		r.Get("/features", s.featuresHandler)
		r.Get("/features/{id}", s.featureHandler)

		r.Post("/bookmarks/{id}/toggle", s.toggleBookmarkHandler)
		r.Get("/bookmarks", s.listBookmarksHandler)
		r.Get("/recent", s.listRecentHandler)
		r.Post("/favorites/{id}/toggle", s.toggleFavoriteHandler)
		r.Get("/favorites", s.listFavoritesHandler)

		r.Post("/chat", s.chatHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, r *http.Request, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
