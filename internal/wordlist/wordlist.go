// Package wordlist loads and normalises the newline-separated word
// lists the CLI and HTTP front end accept, grounded on the original
// project's get_wordlist helper.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

// ErrEmpty is returned when a word list file contains no usable words.
var ErrEmpty = fmt.Errorf("wordlist: file contains no words")

// Load reads a newline-separated word list from path, lower-casing and
// trimming every entry and dropping blank lines.
func Load(path string) (domain.Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a word list from an arbitrary reader, for callers that
// already have the content in memory (e.g. an HTTP request body).
// Duplicate words are kept.
func Read(r io.Reader) (domain.Wordlist, error) {
	var words domain.Wordlist
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("wordlist: word %q contains non-letter characters", w)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
