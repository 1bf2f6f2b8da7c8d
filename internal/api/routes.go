package api

import (
	"log/slog"
	"net/http"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/store"
)

// Config holds API server configuration.
type Config struct {
	Store  store.Store
	Logger *slog.Logger
}

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(cfg Config) http.Handler {
	handler := NewHandler(cfg.Store)
	adminHandler := NewAdminHandler(cfg.Store)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.HandleFunc("GET /api/v1/puzzles/{id}", handler.GetPuzzle)
	mux.HandleFunc("GET /api/v1/puzzles", handler.ListPuzzles)

	mux.HandleFunc("POST /api/v1/generate", adminHandler.GeneratePuzzles)
	mux.HandleFunc("DELETE /api/v1/puzzles/{id}", adminHandler.DeletePuzzle)

	var h http.Handler = mux
	h = CORS(h)
	h = Gzip(h)
	h = Logger(cfg.Logger)(h)
	h = Recover(cfg.Logger)(h)

	return h
}
