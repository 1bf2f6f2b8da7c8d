// Package store provides persistent storage for generated puzzles.
package store

import (
	"context"
	"errors"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("record not found")

// PuzzleFilter contains criteria for listing puzzles.
type PuzzleFilter struct {
	RunID  string
	Limit  int
	Offset int
}

// PuzzleSummary is the reduced projection used for listing endpoints.
type PuzzleSummary struct {
	ID    string `json:"id"`
	RunID string `json:"run_id"`
	Title string `json:"title"`
	Index int    `json:"index"`
}

// PuzzleRepository defines storage operations on generated puzzles.
type PuzzleRepository interface {
	// Store saves a puzzle, assigning an ID if one is not already set.
	Store(ctx context.Context, p *domain.Puzzle) error

	// Get retrieves a puzzle by ID.
	Get(ctx context.Context, id string) (*domain.Puzzle, error)

	// List returns summaries of the puzzles matching the filter criteria.
	// Results are not ordered by creation time: the SQLite store orders by
	// run ID descending, then by index within a run; the in-memory store
	// returns them in no defined order.
	List(ctx context.Context, filter PuzzleFilter) ([]*PuzzleSummary, error)

	// Delete removes a puzzle by ID.
	Delete(ctx context.Context, id string) error
}

// Store combines the repository with lifecycle operations.
type Store interface {
	Puzzles() PuzzleRepository

	// Migrate runs database migrations.
	Migrate(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}
