package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

func countingEmit(grids *[]domain.Grid) EmitFunc {
	return func(chain domain.PlacementChain, grid domain.Grid) error {
		*grids = append(*grids, grid)
		return nil
	}
}

func TestRunEmptyWordlist(t *testing.T) {
	_, err := Run(context.Background(), nil, Unlimited(), Config{}, func(domain.PlacementChain, domain.Grid) error { return nil })
	if err != ErrEmptyWordlist {
		t.Fatalf("got %v, want ErrEmptyWordlist", err)
	}
}

func TestRunWordTooLongForGrid(t *testing.T) {
	_, err := Run(context.Background(), domain.Wordlist{"waytoolongforthegrid"}, Unlimited(),
		Config{Width: 4, Height: 4}, func(domain.PlacementChain, domain.Grid) error { return nil })
	if err != ErrWordTooLong {
		t.Fatalf("got %v, want ErrWordTooLong", err)
	}
}

func TestRunDefaultsWidthHeightToLongestWord(t *testing.T) {
	var grids []domain.Grid
	n, err := Run(context.Background(), domain.Wordlist{"cat"}, FromInt(1),
		Config{Sequential: true}, countingEmit(&grids))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || len(grids) != 1 {
		t.Fatalf("expected exactly one emitted puzzle, got %d", n)
	}
	if grids[0].Width() != 3 || grids[0].Height() != 3 {
		t.Fatalf("got %dx%d grid, want 3x3", grids[0].Width(), grids[0].Height())
	}
}

func TestRunRespectsRequestedCount(t *testing.T) {
	var grids []domain.Grid
	n, err := Run(context.Background(), domain.Wordlist{"cat", "dog"}, FromInt(3),
		Config{Width: 5, Height: 5, Sequential: true}, countingEmit(&grids))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 || len(grids) != 3 {
		t.Fatalf("got %d puzzles, want 3", n)
	}
}

func TestRunNeverExceedsAchievableCount(t *testing.T) {
	// A 3x3 grid with two 3-letter words has a small, finite number of
	// achievable combinations; requesting far more than exist must return
	// the achievable count, not an error.
	var grids []domain.Grid
	n, err := Run(context.Background(), domain.Wordlist{"cat", "dog"}, FromInt(1_000_000),
		Config{Width: 3, Height: 3, Sequential: true}, countingEmit(&grids))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Fatal("expected at least one achievable combination")
	}
	if n != int64(len(grids)) {
		t.Fatalf("reported count %d does not match emitted count %d", n, len(grids))
	}
}

func TestRunSequentialIsDeterministic(t *testing.T) {
	run := func() []string {
		var grids []domain.Grid
		_, err := Run(context.Background(), domain.Wordlist{"cat", "dog"}, FromInt(5),
			Config{Width: 5, Height: 5, Sequential: true, Complete: false}, countingEmit(&grids))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rows := make([]string, 0, len(grids))
		for _, g := range grids {
			rows = append(rows, g.Rows()...)
		}
		return rows
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("different output lengths across runs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d diverged: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestRunCompleteFillsEveryCell(t *testing.T) {
	var grids []domain.Grid
	_, err := Run(context.Background(), domain.Wordlist{"cat"}, FromInt(1),
		Config{Width: 5, Height: 5, Sequential: true, Complete: true, Rng: rand.New(rand.NewSource(1))},
		countingEmit(&grids))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range grids[0].Rows() {
		for _, ch := range row {
			if ch == '*' {
				t.Fatalf("complete grid still has placeholder cells: %q", row)
			}
		}
	}
}

func TestRunIncompleteLeavesPlaceholders(t *testing.T) {
	var grids []domain.Grid
	_, err := Run(context.Background(), domain.Wordlist{"cat"}, FromInt(1),
		Config{Width: 5, Height: 5, Sequential: true, Complete: false}, countingEmit(&grids))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	foundPlaceholder := false
	for _, row := range grids[0].Rows() {
		for _, ch := range row {
			if ch == '*' {
				foundPlaceholder = true
			}
		}
	}
	if !foundPlaceholder {
		t.Fatal("expected placeholder cells in an incomplete 5x5 grid with a single 3-letter word")
	}
}

func TestRunRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, domain.Wordlist{"cat", "dog"}, Unlimited(),
		Config{Width: 5, Height: 5, Sequential: true}, func(domain.PlacementChain, domain.Grid) error { return nil })
	if err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}

type recordingWarner struct {
	messages []string
}

func (r *recordingWarner) Warn(msg string, args ...any) {
	r.messages = append(r.messages, msg)
}

func TestRunWarnsWhenGridGrownToFitWord(t *testing.T) {
	warner := &recordingWarner{}
	var grids []domain.Grid
	_, err := Run(context.Background(), domain.Wordlist{"elephant"}, FromInt(1),
		Config{Width: 3, Height: 3, Sequential: true, Logger: warner}, countingEmit(&grids))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warner.messages) == 0 {
		t.Fatal("expected a warning about the grid being grown to fit the longest word")
	}
	if grids[0].Width() != len("elephant") || grids[0].Height() != len("elephant") {
		t.Fatalf("grid not grown to fit: %dx%d", grids[0].Width(), grids[0].Height())
	}
}

func TestRunEmitErrorPropagates(t *testing.T) {
	wantErr := context.Canceled
	_, err := Run(context.Background(), domain.Wordlist{"cat"}, FromInt(5),
		Config{Width: 5, Height: 5, Sequential: true},
		func(domain.PlacementChain, domain.Grid) error { return wantErr })
	if err != wantErr {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}
