// Package cmd wires the wordsearch CLI's subcommand tree.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rask004/WordSearchPuzzleGenerator/cmd/wordsearch/cmd/generate"
	"github.com/rask004/WordSearchPuzzleGenerator/cmd/wordsearch/cmd/renderpng"
	"github.com/rask004/WordSearchPuzzleGenerator/cmd/wordsearch/cmd/validatewordlist"
)

// verbose is bound to the persistent --verbose flag; subcommands read it
// directly to pick slog.LevelDebug over slog.LevelInfo when building
// their own logger (no package-level logger is kept here).
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Generate and render word-search puzzles",
	Long: `wordsearch generates word-search puzzles from a word list: rectangular
letter grids in which every word appears exactly once as a straight run
along one of the eight compass directions.

It provides commands for:
  - generating puzzle batches, sequentially or randomised, to a file or a
    SQLite store
  - rendering a generated grid to a PNG image
  - validating a word list file before a generation run`,
}

// Execute runs the root command. Called once from main().
func Execute() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(generate.Command(&verbose))
	rootCmd.AddCommand(renderpng.Command())
	rootCmd.AddCommand(validatewordlist.Command())
}
