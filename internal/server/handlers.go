package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleIndex returns the full lightweight page index.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.wiki.Index())
}

// handlePage synthesizes and returns one full page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	page, ok := s.wiki.Page(id)
	if !ok {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	resp := struct {
		Page    any `json:"page"`
		SeeAlso any `json:"see_also,omitempty"`
	}{
		Page: page,
	}
	if seeAlso := s.wiki.SeeAlso(id); len(seeAlso) > 0 {
		resp.SeeAlso = seeAlso
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSearch performs substring search, or semantic search when the
// vector index is configured and mode=semantic is requested.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if r.URL.Query().Get("mode") == "semantic" {
		if s.semantic == nil {
			writeError(w, http.StatusBadRequest, "semantic search is not configured")
			return
		}
		results, err := s.semantic.Search(r.Context(), q, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, results)
		return
	}

	writeJSON(w, http.StatusOK, s.wiki.Search(q, limit))
}

// handleCategories lists all observed categories.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.wiki.Categories())
}

// handleDisambiguations returns the disambiguation group map.
func (s *Server) handleDisambiguations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.wiki.Disambiguations())
}

// handleReload re-materializes the source collections and notifies
// websocket subscribers.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if s.reload == nil {
		writeError(w, http.StatusBadRequest, "reload is not configured")
		return
	}
	if err := s.reload(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.notifier.broadcast(reloadEvent{Event: "reloaded", Pages: len(s.wiki.Index())})
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}
