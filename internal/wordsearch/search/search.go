// Package search implements the recursive placement search and its
// output-count allocator — the non-trivial core of the word-search
// generator. It walks the word list in fixed order, at each level
// producing child placements filtered by the overlap validator,
// distributing the remaining output budget across children, and
// invoking the leaf callback on completed combinations.
package search

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/candidates"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/overlap"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/placement"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/render"
)

// ErrWordTooLong is a configuration error: a word is longer than
// max(width, height) and can never be placed. Reported before the
// search begins; the run is aborted.
var ErrWordTooLong = errors.New("search: word longer than max(width, height)")

// ErrEmptyWordlist is returned when Run is called with no words.
var ErrEmptyWordlist = errors.New("search: wordlist is empty")

// WidthWarner receives a warning when Run coerces width or height
// upward to fit the longest word. Implemented by *slog.Logger in
// production; tests may pass a recording stub.
type WidthWarner interface {
	Warn(msg string, args ...any)
}

// Config configures one generation run. A zero Width or Height defaults
// to the length of the longest word. Duplicate words in the wordlist
// passed to Run are not removed: each occurrence is placed
// independently, so callers that do not want that pass a deduplicated
// list.
type Config struct {
	Width, Height int
	Placeholder   byte // default '*' if zero
	Complete      bool
	Sequential    bool
	Rng           *rand.Rand // used when !Sequential or Complete; Run seeds one with 1 if nil
	Logger        WidthWarner
}

// EmitFunc is invoked once per completed puzzle. A non-nil error aborts
// the run; the error propagates out of Run unchanged.
type EmitFunc func(chain domain.PlacementChain, grid domain.Grid) error

// Run generates puzzles for wordlist under budget, invoking emit once
// per leaf. It returns the number of leaves actually emitted, which is
// min(requested, achievable) whenever budget is finite — "exhausted
// before target" is reported truthfully via this count, not as an
// error.
func Run(ctx context.Context, wordlist domain.Wordlist, budget Budget, cfg Config, emit EmitFunc) (int64, error) {
	if len(wordlist) == 0 {
		return 0, ErrEmptyWordlist
	}

	words := presort(wordlist)
	longest := len(words[0])

	if cfg.Width <= 0 {
		cfg.Width = longest
	} else if cfg.Width < longest {
		warn(cfg.Logger, "width smaller than longest word, increasing to fit", "width", cfg.Width, "longest", longest)
		cfg.Width = longest
	}
	if cfg.Height <= 0 {
		cfg.Height = longest
	} else if cfg.Height < longest {
		warn(cfg.Logger, "height smaller than longest word, increasing to fit", "height", cfg.Height, "longest", longest)
		cfg.Height = longest
	}
	if cfg.Placeholder == 0 {
		cfg.Placeholder = '*'
	}

	maxDim := cfg.Width
	if cfg.Height > maxDim {
		maxDim = cfg.Height
	}
	for _, w := range words {
		if len(w) > maxDim {
			return 0, ErrWordTooLong
		}
	}

	rng := cfg.Rng
	if rng == nil && (!cfg.Sequential || cfg.Complete) {
		rng = rand.New(rand.NewSource(1))
	}
	cfg.Rng = rng

	s := &searcher{exp: placement.New(), words: words, cfg: cfg, emit: emit}
	return s.branch(ctx, domain.LetterMap{}, nil, 0, budget)
}

// presort sorts a copy of wordlist by descending length, stable so that
// ties keep their original relative order (spec §3 Wordlist invariant).
func presort(wordlist domain.Wordlist) domain.Wordlist {
	words := make(domain.Wordlist, len(wordlist))
	copy(words, wordlist)
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return words
}

func warn(w WidthWarner, msg string, args ...any) {
	if w != nil {
		w.Warn(msg, args...)
	}
}

type searcher struct {
	exp   *placement.Expander
	words domain.Wordlist
	cfg   Config
	emit  EmitFunc
}

// branch implements §4.5's expand_branch. committed is the merged
// LetterMap of placements from depth 0..wordIndex−1; chain is the
// active PlacementChain for the same prefix.
func (s *searcher) branch(ctx context.Context, committed domain.LetterMap, chain domain.PlacementChain, wordIndex int, budget Budget) (int64, error) {
	if budget.IsZero() {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	word := s.words[wordIndex]
	survivors := s.surviving(word, committed, budget)
	if len(survivors) == 0 {
		return 0, nil
	}

	last := wordIndex == len(s.words)-1
	if last {
		var emitted int64
		for _, p := range survivors {
			leafChain := appendChain(chain, p)
			grid := render.Materialise(leafChain, s.exp, s.cfg.Width, s.cfg.Height, s.cfg.Placeholder, s.cfg.Complete, s.cfg.Rng)
			if err := s.emit(leafChain, grid); err != nil {
				return emitted, err
			}
			emitted++
		}
		return emitted, nil
	}

	childBudgets := Distribute(budget, len(survivors))
	var total int64
	for i, p := range survivors {
		cb := childBudgets[i]
		if cb.IsZero() {
			continue
		}
		childCommitted := committed.Clone()
		childCommitted.Merge(s.exp.Expand(p))
		childChain := appendChain(chain, p)

		n, err := s.branch(ctx, childCommitted, childChain, wordIndex+1, cb)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// surviving returns every placement of word that is compatible with
// committed, in enumeration order, capped at ⌈budget⌉ when budget is
// finite (unlimited budgets collect every survivor).
func (s *searcher) surviving(word string, committed domain.LetterMap, budget Budget) domain.PlacementChain {
	limit := -1
	if !budget.IsUnlimited() {
		limit = budget.Ceil()
	}

	var seq func(yield func(candidates.Candidate) bool)
	if s.cfg.Sequential {
		seq = candidates.Sequential(word, s.cfg.Width, s.cfg.Height)
	} else {
		seq = candidates.Randomised(word, s.cfg.Width, s.cfg.Height, s.cfg.Rng)
	}

	var out domain.PlacementChain
	seq(func(c candidates.Candidate) bool {
		for _, d := range c.Dirs {
			p := domain.Placement{Origin: c.Origin, Dir: d, Word: word}
			if !overlap.CompatibleExpanded(placement.ExpandUncached(p), committed) {
				continue
			}
			out = append(out, p)
			if limit >= 0 && len(out) >= limit {
				return false
			}
		}
		return true
	})
	return out
}

// appendChain extends chain with p without mutating chain's backing
// array, so sibling branches at the same recursion level never alias
// each other's slices.
func appendChain(chain domain.PlacementChain, p domain.Placement) domain.PlacementChain {
	out := make(domain.PlacementChain, len(chain)+1)
	copy(out, chain)
	out[len(chain)] = p
	return out
}
