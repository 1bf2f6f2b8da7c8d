// Package generate implements the "wordsearch generate" subcommand: run
// the placement search against a word list and write the resulting
// puzzles to a file and/or a SQLite store.
package generate

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/store"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordlist"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/search"
	"github.com/rask004/WordSearchPuzzleGenerator/internal/writer"
)

type flags struct {
	width, height int
	puzzleCount   int64
	createAll     bool
	incomplete    bool
	placeholder   string
	output        string
	sequential    bool
	seed          int64
	title         string
	dbPath        string
}

// Command builds the generate subcommand. verbose points at the root
// command's persistent --verbose flag value.
func Command(verbose *bool) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "generate <wordlist-file>",
		Short: "Generate word-search puzzles from a word list file",
		Long: `Generate reads a newline-separated word list and runs the placement
search, writing each produced puzzle in wire format (the grid rows joined
by commas, terminated by a semicolon) to the output file, and optionally persisting
it to a SQLite store for the HTTP front end to serve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f, *verbose)
		},
	}

	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "grid width (default: longest word length)")
	cmd.Flags().IntVarP(&f.height, "height", "l", 0, "grid height (default: longest word length)")
	cmd.Flags().Int64VarP(&f.puzzleCount, "puzzle_count", "p", 1, "number of puzzles to emit")
	cmd.Flags().BoolVarP(&f.createAll, "create_all", "c", false, "enumerate exhaustively, ignoring puzzle_count")
	cmd.Flags().BoolVar(&f.incomplete, "incomplete", false, "leave unused cells as placeholders instead of random letters")
	cmd.Flags().StringVar(&f.placeholder, "placeholder", "*", "placeholder character for unused cells")
	cmd.Flags().StringVarP(&f.output, "output_filename", "o", "puzzles.txt", "output file for generated puzzles")
	cmd.Flags().BoolVarP(&f.sequential, "sequential", "s", false, "enumerate candidates in deterministic row-major order instead of shuffled")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed (ignored when both --sequential and --incomplete are set)")
	cmd.Flags().StringVar(&f.title, "title", "", "title stamped on stored puzzles")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "optional SQLite database path to persist puzzles to")

	return cmd
}

func run(cmd *cobra.Command, wordlistPath string, f *flags, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	words, err := wordlist.Load(wordlistPath)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logger.Debug("loaded wordlist", "words", len(words), "path", wordlistPath)

	if len(f.placeholder) != 1 {
		return fmt.Errorf("generate: --placeholder must be exactly one character")
	}

	budget := search.FromInt(f.puzzleCount)
	if f.createAll {
		budget = search.Unlimited()
	}

	cfg := search.Config{
		Width:       f.width,
		Height:      f.height,
		Placeholder: f.placeholder[0],
		Complete:    !f.incomplete,
		Sequential:  f.sequential,
		Logger:      logger,
	}
	if !cfg.Sequential || cfg.Complete {
		cfg.Rng = rand.New(rand.NewSource(f.seed))
	}

	out, err := os.Create(f.output)
	if err != nil {
		return fmt.Errorf("generate: create output: %w", err)
	}
	defer out.Close()
	fileWriter := writer.New(out)

	var repo store.PuzzleRepository
	if f.dbPath != "" {
		s, err := store.NewSQLiteStore(f.dbPath)
		if err != nil {
			return fmt.Errorf("generate: open store: %w", err)
		}
		defer s.Close()
		if err := s.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("generate: migrate store: %w", err)
		}
		repo = s.Puzzles()
	}

	useSpinner := isatty.IsTerminal(os.Stdout.Fd()) && !verbose
	var sp *spinner.Spinner
	if useSpinner {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Suffix = " generating puzzles..."
		sp.Start()
	}

	runID := uuid.New().String()
	started := time.Now()
	var index int

	emit := func(chain domain.PlacementChain, grid domain.Grid) error {
		p := &domain.Puzzle{
			RunID:      runID,
			Title:      f.title,
			Width:      grid.Width(),
			Height:     grid.Height(),
			Words:      wordsOf(chain),
			Grid:       grid.Rows(),
			Complete:   cfg.Complete,
			Sequential: cfg.Sequential,
			Index:      index,
		}
		index++
		fileWriter.Add(p.WireFormat())
		if repo != nil {
			if err := repo.Store(cmd.Context(), p); err != nil {
				return fmt.Errorf("store puzzle: %w", err)
			}
		}
		return nil
	}

	count, runErr := search.Run(cmd.Context(), words, budget, cfg, emit)

	if sp != nil {
		sp.Stop()
	}
	if closeErr := fileWriter.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return fmt.Errorf("generate: %w", runErr)
	}

	elapsed := time.Since(started)
	summary := fmt.Sprintf("wrote %s puzzles to %s in %s", humanize.Comma(count), f.output, elapsed.Round(time.Millisecond))
	if isatty.IsTerminal(os.Stdout.Fd()) {
		color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), summary)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	}
	return nil
}

func wordsOf(chain domain.PlacementChain) []string {
	words := make([]string, len(chain))
	for i, p := range chain {
		words[i] = p.Word
	}
	return words
}
