// Package main is the entry point for the docsearch CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the docsearch CLI.
var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Documentation search and ranking service",
	Long: `docsearch scans a directory tree of markdown documents and ranks them
against free-text queries: titles and bodies are matched case-insensitively,
scored with an additive heuristic, and returned with context snippets.

Run "docsearch serve" to expose the engine over HTTP, or "docsearch query"
to search the corpus directly from the shell.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
