// Package overlap decides whether a candidate placement is compatible
// with the letters already committed by the active search branch.
package overlap

import "github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"

// Compatible reports whether candidate's letters agree with committed at
// every cell they share. Non-overlapping candidates are always
// compatible. Complexity is O(len(word)): shared cells are found by map
// lookup against committed, never by iterating all of committed.
func Compatible(candidate domain.Placement, committed domain.LetterMap) bool {
	v := candidate.Dir.Vector()
	for i := 0; i < len(candidate.Word); i++ {
		cell := domain.Cell{X: candidate.Origin.X + v.DX*i, Y: candidate.Origin.Y + v.DY*i}
		if existing, ok := committed[cell]; ok && existing != candidate.Word[i] {
			return false
		}
	}
	return true
}

// CompatibleExpanded is equivalent to Compatible but reuses an
// already-expanded LetterMap for candidate, for callers that expanded it
// via an Expander for other reasons (e.g. a cache-warm path) and want to
// avoid a second walk of the word.
func CompatibleExpanded(candidateLetters domain.LetterMap, committed domain.LetterMap) bool {
	for cell, letter := range candidateLetters {
		if existing, ok := committed[cell]; ok && existing != letter {
			return false
		}
	}
	return true
}
