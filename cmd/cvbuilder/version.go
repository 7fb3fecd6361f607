package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the cvbuilder version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("cvbuilder %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
