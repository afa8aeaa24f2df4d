package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of moss",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moss version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
