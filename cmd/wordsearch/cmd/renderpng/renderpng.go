// Package renderpng implements the "wordsearch render-png" subcommand:
// rasterise a single generated puzzle to a PNG image.
package renderpng

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordlist"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/render"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/search"
)

type flags struct {
	width, height int
	output        string
	cellSize      int
	title         string
}

// Command builds the render-png subcommand.
func Command() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "render-png <wordlist-file>",
		Short: "Generate one puzzle and rasterise it to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}

	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "grid width (default: longest word length)")
	cmd.Flags().IntVarP(&f.height, "height", "l", 0, "grid height (default: longest word length)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "puzzle.png", "output PNG path")
	cmd.Flags().IntVar(&f.cellSize, "cell-size", 0, "pixels per grid cell (default 40)")
	cmd.Flags().StringVar(&f.title, "title", "", "header text above the word list")

	return cmd
}

func run(cmd *cobra.Command, wordlistPath string, f *flags) error {
	words, err := wordlist.Load(wordlistPath)
	if err != nil {
		return fmt.Errorf("render-png: %w", err)
	}

	cfg := search.Config{
		Width:      f.width,
		Height:     f.height,
		Complete:   true,
		Sequential: true,
		Rng:        rand.New(rand.NewSource(1)),
	}

	var rendered bool
	count, err := search.Run(cmd.Context(), words, search.FromInt(1), cfg, func(chain domain.PlacementChain, grid domain.Grid) error {
		rendered = true
		out, err := os.Create(f.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer out.Close()
		return render.WritePNG(out, grid, words, render.PNGOptions{CellSize: f.cellSize, HeaderText: f.title})
	})
	if err != nil {
		return fmt.Errorf("render-png: %w", err)
	}
	if count == 0 || !rendered {
		return fmt.Errorf("render-png: no puzzle could be generated for this word list")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.output)
	return nil
}
