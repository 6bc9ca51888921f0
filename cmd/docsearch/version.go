package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docpilot/docsearch/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of docsearch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docsearch %s (%s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
