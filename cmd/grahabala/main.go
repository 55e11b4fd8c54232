// Package main provides the grahabala CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "grahabala",
		Short: "Ashtakavarga scoring for Vedic charts",
		Long: `Grahabala computes Bhinnashtakavarga matrices for the seven classical
planets and aggregates them into the combined Sarvashtakavarga table.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newComputeCmd(),
		newBAVCmd(),
		newValidateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
