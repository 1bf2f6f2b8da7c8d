// Package candidates enumerates every (origin, direction) pair a word
// could occupy in a grid of given size, in either deterministic or
// randomised order.
package candidates

import (
	"math/rand"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/geometry"
)

// Candidate is one origin cell paired with every direction a word of a
// given length could run along from it, within bounds.
type Candidate struct {
	Origin domain.Cell
	Dirs   []domain.Direction
}

// Sequential yields candidates in row-major cell order (y outer, x inner,
// both ascending), directions in the fixed octet order. Deterministic:
// repeated calls with the same arguments yield byte-identical sequences.
// The returned sequence is lazy — a caller that ranges and breaks early
// never pays for cells it didn't visit.
func Sequential(word string, width, height int) func(yield func(Candidate) bool) {
	allowed := geometry.AllowedDirections(len(word), width, height)
	return func(yield func(Candidate) bool) {
		if len(allowed) == 0 {
			return
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dirs := admissibleDirections(x, y, len(word), width, height, allowed)
				if len(dirs) == 0 {
					continue
				}
				if !yield(Candidate{Origin: domain.Cell{X: x, Y: y}, Dirs: dirs}) {
					return
				}
			}
		}
	}
}

// Randomised yields the same universe of candidates as Sequential but in
// an order driven by rng: origins are visited via a Fisher–Yates shuffle
// of the full cell list, and within each origin the admissible
// directions are likewise shuffled. Made explicit per the design note in
// spec §9 — this repo never relies on map/set iteration order as a
// source of variability the way the original Python implementation did.
func Randomised(word string, width, height int, rng *rand.Rand) func(yield func(Candidate) bool) {
	allowed := geometry.AllowedDirections(len(word), width, height)
	return func(yield func(Candidate) bool) {
		if len(allowed) == 0 {
			return
		}
		order := shuffledCells(width, height, rng)
		for _, cell := range order {
			dirs := admissibleDirections(cell.X, cell.Y, len(word), width, height, allowed)
			if len(dirs) == 0 {
				continue
			}
			shuffleDirections(dirs, rng)
			if !yield(Candidate{Origin: cell, Dirs: dirs}) {
				return
			}
		}
	}
}

func admissibleDirections(x, y, l, width, height int, allowed []domain.Direction) []domain.Direction {
	var dirs []domain.Direction
	for _, d := range allowed {
		if geometry.InBounds(x, y, d, l, width, height) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func shuffledCells(width, height int, rng *rand.Rand) []domain.Cell {
	cells := make([]domain.Cell, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells = append(cells, domain.Cell{X: x, Y: y})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	return cells
}

func shuffleDirections(dirs []domain.Direction, rng *rand.Rand) {
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
}
