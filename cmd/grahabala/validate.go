package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grahabala/grahabala/pkg/ashtakavarga"
	"github.com/grahabala/grahabala/pkg/chart"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the benefic table's structural invariant",
		Long:  `Sums every target planet's contributor house sets and verifies the 337-point grand total.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := ashtakavarga.Validate(ashtakavarga.Canonical())
			if err != nil {
				return fmt.Errorf("benefic table validation: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Benefic table totals:")
			for _, p := range chart.Planets() {
				fmt.Fprintf(os.Stdout, "  %-12s %2d\n", p, totals.PerPlanet[p])
			}
			fmt.Fprintf(os.Stdout, "  %-12s %d\n", "Total", totals.GrandTotal)
			return nil
		},
	}
}
