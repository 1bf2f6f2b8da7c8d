// Command wordsearch is the word-search puzzle generator CLI.
package main

import "github.com/rask004/WordSearchPuzzleGenerator/cmd/wordsearch/cmd"

func main() {
	cmd.Execute()
}
