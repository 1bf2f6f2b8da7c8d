// Package validatewordlist implements the "wordsearch validate-wordlist"
// subcommand: check a word list file is well-formed before spending a
// generation run on it.
package validatewordlist

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordlist"
)

// Command builds the validate-wordlist subcommand.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-wordlist <wordlist-file>",
		Short: "Check a word list file parses and report the words it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := wordlist.Load(args[0])
			if err != nil {
				return fmt.Errorf("validate-wordlist: %w", err)
			}
			green := color.New(color.FgGreen)
			green.Fprintf(cmd.OutOrStdout(), "%d words:\n", len(words))
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}
