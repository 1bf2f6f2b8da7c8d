package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/store"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

func setupTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()

	db, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)

	require.NoError(t, db.Migrate(context.Background()))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	router := NewRouter(Config{Store: db, Logger: logger})
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		db.Close()
	})

	return server, db
}

func createTestPuzzle(id, runID string) *domain.Puzzle {
	return &domain.Puzzle{
		ID:     id,
		RunID:  runID,
		Title:  "Test Puzzle",
		Width:  3,
		Height: 3,
		Words:  []string{"cat"},
		Grid:   []string{"cat", "***", "***"},
	}
}

func TestHealthCheck(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "ok", result["status"])
}

func TestGetPuzzle(t *testing.T) {
	server, db := setupTestServer(t)
	ctx := context.Background()

	puzzle := createTestPuzzle("test-puzzle-1", "run-1")
	require.NoError(t, db.Puzzles().Store(ctx, puzzle))

	resp, err := http.Get(server.URL + "/api/v1/puzzles/test-puzzle-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("ETag"))

	var result domain.Puzzle
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, puzzle.ID, result.ID)
}

func TestGetPuzzle_NotFound(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/puzzles/nonexistent")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListPuzzles(t *testing.T) {
	server, db := setupTestServer(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		puzzle := createTestPuzzle("puzzle-"+string(rune('a'+i)), "run-1")
		require.NoError(t, db.Puzzles().Store(ctx, puzzle))
	}

	resp, err := http.Get(server.URL + "/api/v1/puzzles?run=run-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Puzzles []store.PuzzleSummary `json:"puzzles"`
		Count   int                   `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 3, result.Count)
}

func TestGeneratePuzzles(t *testing.T) {
	server, _ := setupTestServer(t)

	body := `{"words":["cat","dog"],"width":5,"height":5,"count":2,"sequential":true}`
	resp, err := http.Post(server.URL+"/api/v1/generate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		RunID   string                `json:"run_id"`
		Puzzles []store.PuzzleSummary `json:"puzzles"`
		Count   int                   `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.Count)
}

func TestGeneratePuzzles_MissingWords(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Post(server.URL+"/api/v1/generate", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestGzipCompression(t *testing.T) {
	server, db := setupTestServer(t)
	ctx := context.Background()

	puzzle := createTestPuzzle("gzip-test", "run-1")
	require.NoError(t, db.Puzzles().Store(ctx, puzzle))

	req, err := http.NewRequest("GET", server.URL+"/api/v1/puzzles/gzip-test", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
}
