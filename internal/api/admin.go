package api

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"

	"github.com/google/uuid"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/store"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/validate"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/search"
)

// AdminHandler holds dependencies for the generation and management
// endpoints, mirroring the original Flask app's /api/v1/<wordlist>/
// route: post a word list, and the generated puzzles are stored and
// listed back by ID.
type AdminHandler struct {
	store store.Store
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(s store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

// GenerateRequest is the request body for puzzle generation.
type GenerateRequest struct {
	Title      string   `json:"title"`
	Words      []string `json:"words"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Count      int64    `json:"count"`      // 0 means unlimited (exhaustive)
	Complete   bool     `json:"complete"`
	Sequential bool     `json:"sequential"`
	Seed       int64    `json:"seed"`
}

// GeneratePuzzles runs the placement search and persists every emitted
// puzzle under a freshly minted run ID.
// POST /api/v1/generate
func (h *AdminHandler) GeneratePuzzles(w http.ResponseWriter, r *http.Request) {
	body, readErr := io.ReadAll(r.Body)
	if readErr != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.ValidateGenerateRequestJSON(body); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs.Error())
		return
	}
	var req GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Words) == 0 {
		writeError(w, http.StatusBadRequest, "words is required")
		return
	}

	budget := search.Unlimited()
	if req.Count > 0 {
		budget = search.FromInt(req.Count)
	}

	rng := rand.New(rand.NewSource(req.Seed))
	cfg := search.Config{
		Width:      req.Width,
		Height:     req.Height,
		Complete:   req.Complete,
		Sequential: req.Sequential,
		Rng:        rng,
	}

	runID := uuid.New().String()
	var stored []*store.PuzzleSummary

	index := 0
	_, err := search.Run(r.Context(), domain.Wordlist(req.Words), budget, cfg,
		func(chain domain.PlacementChain, grid domain.Grid) error {
			puzzle := &domain.Puzzle{
				RunID:      runID,
				Title:      req.Title,
				Width:      grid.Width(),
				Height:     grid.Height(),
				Words:      req.Words,
				Grid:       grid.Rows(),
				Complete:   req.Complete,
				Sequential: req.Sequential,
				Index:      index,
			}
			if err := h.store.Puzzles().Store(r.Context(), puzzle); err != nil {
				return err
			}
			stored = append(stored, &store.PuzzleSummary{ID: puzzle.ID, RunID: runID, Title: puzzle.Title, Index: index})
			index++
			return nil
		})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run_id":  runID,
		"puzzles": stored,
		"count":   len(stored),
	})
}

// DeletePuzzle deletes a puzzle by ID.
// DELETE /api/v1/puzzles/{id}
func (h *AdminHandler) DeletePuzzle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing puzzle id")
		return
	}

	if err := h.store.Puzzles().Delete(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			writeError(w, http.StatusNotFound, "puzzle not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}
