// Package server exposes the wiki over HTTP: the lightweight index for
// navigation and search, full pages on demand, and a websocket channel that
// announces source reloads.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chris-arsenault/lorewiki/internal/vectordb"
	"github.com/chris-arsenault/lorewiki/internal/wiki"
)

// Config holds server configuration.
type Config struct {
	Port      int
	SiteTitle string
	AllowAll  bool // allow all CORS origins (dev mode)
}

// Reloader re-materializes the source collections into the wiki. The serve
// command wires it to the snapshot loader and the archive store.
type Reloader func(ctx context.Context) error

// Server hosts the wiki API.
type Server struct {
	cfg        Config
	wiki       *wiki.Wiki
	semantic   *vectordb.ChromemStore
	reload     Reloader
	router     chi.Router
	httpServer *http.Server
	notifier   *notifier
}

// New creates a server over an already-populated wiki. semantic and reload
// may be nil.
func New(cfg Config, w *wiki.Wiki, semantic *vectordb.ChromemStore, reload Reloader) *Server {
	s := &Server{
		cfg:      cfg,
		wiki:     w,
		semantic: semantic,
		reload:   reload,
		notifier: newNotifier(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "site": s.cfg.SiteTitle})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/index", s.handleIndex)
		r.Get("/pages/{id}", s.handlePage)
		r.Get("/search", s.handleSearch)
		r.Get("/categories", s.handleCategories)
		r.Get("/disambiguations", s.handleDisambiguations)
		r.Post("/reload", s.handleReload)
	})

	r.Get("/ws", s.notifier.handleWebSocket)

	return r
}

// Start begins serving HTTP requests. It blocks until the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	log.Printf("lorewiki server listening on %s", addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.notifier.closeAll()
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the underlying router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
