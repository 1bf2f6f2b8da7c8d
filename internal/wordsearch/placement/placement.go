// Package placement expands a single Placement into the LetterMap it
// induces, memoising the result for the lifetime of one generation run.
package placement

import "github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"

// Expander expands placements into letter maps, caching by the placement
// triple. It is not safe for concurrent use: the search core is
// single-threaded (see package search), and a caller that wants to
// parallelise across disjoint root subtrees must give each worker its
// own Expander.
type Expander struct {
	cache map[domain.Placement]domain.LetterMap
}

// New creates an Expander with an empty cache.
func New() *Expander {
	return &Expander{cache: make(map[domain.Placement]domain.LetterMap)}
}

// Expand returns the LetterMap induced by p, using and populating the
// cache. The cache is never invalidated within a run: placements are
// immutable once built.
func (e *Expander) Expand(p domain.Placement) domain.LetterMap {
	if m, ok := e.cache[p]; ok {
		return m
	}
	m := expand(p)
	e.cache[p] = m
	return m
}

// ExpandUncached computes the LetterMap for p without touching the
// cache, for high-frequency "does this candidate fit?" checks that would
// otherwise pollute the cache with placements that never get used.
func ExpandUncached(p domain.Placement) domain.LetterMap {
	return expand(p)
}

func expand(p domain.Placement) domain.LetterMap {
	v := p.Dir.Vector()
	m := make(domain.LetterMap, len(p.Word))
	for i := 0; i < len(p.Word); i++ {
		cell := domain.Cell{X: p.Origin.X + v.DX*i, Y: p.Origin.Y + v.DY*i}
		m[cell] = p.Word[i]
	}
	return m
}
