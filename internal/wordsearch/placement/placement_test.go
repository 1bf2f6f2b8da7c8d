package placement

import (
	"testing"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

func TestExpandRight(t *testing.T) {
	p := domain.Placement{Origin: domain.Cell{X: 0, Y: 0}, Dir: domain.Right, Word: "cat"}
	m := ExpandUncached(p)

	want := domain.LetterMap{
		{X: 0, Y: 0}: 'c',
		{X: 1, Y: 0}: 'a',
		{X: 2, Y: 0}: 't',
	}
	if len(m) != len(want) {
		t.Fatalf("got %d cells, want %d", len(m), len(want))
	}
	for cell, letter := range want {
		if m[cell] != letter {
			t.Errorf("cell %v = %q, want %q", cell, m[cell], letter)
		}
	}
}

func TestExpandCachesResult(t *testing.T) {
	e := New()
	p := domain.Placement{Origin: domain.Cell{X: 1, Y: 1}, Dir: domain.Down, Word: "dog"}

	first := e.Expand(p)
	second := e.Expand(p)

	for cell, letter := range first {
		if second[cell] != letter {
			t.Fatalf("cached expansion diverged at %v", cell)
		}
	}
	if len(e.cache) != 1 {
		t.Fatalf("expected one cache entry, got %d", len(e.cache))
	}
}

func TestExpandDiagonal(t *testing.T) {
	p := domain.Placement{Origin: domain.Cell{X: 2, Y: 2}, Dir: domain.UpLeft, Word: "go"}
	m := ExpandUncached(p)

	if m[domain.Cell{X: 2, Y: 2}] != 'g' || m[domain.Cell{X: 1, Y: 1}] != 'o' {
		t.Fatalf("unexpected diagonal expansion: %v", m)
	}
}
