// Package render materialises a completed placement chain into a
// rendered W×H grid, optionally filling unused cells with random
// letters.
package render

import (
	"math/rand"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/placement"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// Materialise unions the LetterMaps of every placement in chain, builds
// a width x height grid initialised to placeholder, writes each
// committed letter, and — when complete is true — replaces every
// remaining placeholder with a uniformly random lowercase letter drawn
// from rng.
func Materialise(chain domain.PlacementChain, exp *placement.Expander, width, height int, placeholder byte, complete bool, rng *rand.Rand) domain.Grid {
	letters := make(domain.LetterMap)
	for _, p := range chain {
		letters.Merge(exp.Expand(p))
	}

	grid := make(domain.Grid, height)
	for y := range grid {
		row := make([]byte, width)
		for x := range row {
			row[x] = placeholder
		}
		grid[y] = row
	}

	for cell, letter := range letters {
		grid[cell.Y][cell.X] = letter
	}

	if complete {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if grid[y][x] == placeholder {
					grid[y][x] = lowercase[rng.Intn(len(lowercase))]
				}
			}
		}
	}

	return grid
}
