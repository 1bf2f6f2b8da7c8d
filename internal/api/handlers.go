// Package api provides the HTTP front end for generating and serving
// word-search puzzles, grounded on the original project's Flask routes
// (/, /api/, /api/v1/<wordlist>/).
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/store"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	store store.Store
}

// NewHandler creates a new Handler with the given store.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// GetPuzzle returns a specific puzzle by ID.
// GET /api/v1/puzzles/{id}
func (h *Handler) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing puzzle id")
		return
	}

	puzzle, err := h.store.Puzzles().Get(r.Context(), id)
	if err == store.ErrNotFound {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch puzzle")
		return
	}

	writeJSONWithETag(w, puzzle)
}

// ListPuzzles returns the puzzles belonging to a generation run.
// GET /api/v1/puzzles?run=<id>&limit=50
func (h *Handler) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.PuzzleFilter{
		RunID: q.Get("run"),
		Limit: 50,
	}

	if limit := q.Get("limit"); limit != "" {
		if l, err := json.Number(limit).Int64(); err == nil && l > 0 && l <= 500 {
			filter.Limit = int(l)
		}
	}

	puzzles, err := h.store.Puzzles().List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list puzzles")
		return
	}

	if puzzles == nil {
		puzzles = []*store.PuzzleSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"puzzles": puzzles,
		"count":   len(puzzles),
	})
}

// HealthCheck returns server health status.
// GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// APIError represents an error response.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIError{Error: http.StatusText(status), Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeJSONWithETag(w http.ResponseWriter, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	hash := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(hash[:8]) + `"`

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")

	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
