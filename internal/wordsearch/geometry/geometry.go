// Package geometry provides the grid bounds-checking primitives the rest
// of the word-search placement search builds on.
package geometry

import "github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"

// InBounds reports whether an L-long run starting at (x, y) and running
// along d stays within [0, width) x [0, height). Words of length 1 are
// trivially in-bounds at any cell, for every direction.
func InBounds(x, y int, d domain.Direction, l, width, height int) bool {
	if x < 0 || y < 0 || x >= width || y >= height {
		return false
	}
	if l <= 1 {
		return true
	}
	v := d.Vector()
	endX := x + v.DX*(l-1)
	endY := y + v.DY*(l-1)
	return endX >= 0 && endX < width && endY >= 0 && endY < height
}

// AllowedDirections narrows the eight directions to the ones a word of
// length l could possibly fit along, given grid dimensions: longer than
// the width rules out every direction with a horizontal component, and
// longer than the height rules out every direction with a vertical
// component. When l exceeds both, the caller has a configuration error
// (see search.ErrWordTooLong) and should not call this function.
func AllowedDirections(l, width, height int) []domain.Direction {
	if l > width && l > height {
		return nil
	}
	if l > width {
		return []domain.Direction{domain.Up, domain.Down}
	}
	if l > height {
		return []domain.Direction{domain.Right, domain.Left}
	}
	all := make([]domain.Direction, 8)
	for i := range all {
		all[i] = domain.Direction(i)
	}
	return all
}
