package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grahabala/grahabala/pkg/ashtakavarga"
	"github.com/grahabala/grahabala/pkg/chart"
	"github.com/grahabala/grahabala/pkg/surface"
)

func newBAVCmd() *cobra.Command {
	var (
		chartPath  string
		planetName string
	)

	cmd := &cobra.Command{
		Use:   "bav",
		Short: "Render one planet's Bhinnashtakavarga grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, ok := planetByName(planetName)
			if !ok {
				return fmt.Errorf("unknown planet %q (expected one of Sun..Saturn)", planetName)
			}

			c, err := chart.Load(chartPath)
			if err != nil {
				return err
			}

			engine, err := ashtakavarga.NewEngine(nil)
			if err != nil {
				return fmt.Errorf("initializing engine: %w", err)
			}

			m, err := engine.BAV(target, c.Signs[:])
			if err != nil {
				return fmt.Errorf("bav for %s: %w", target, err)
			}

			fmt.Fprintf(os.Stdout, "%s occupies %s\n\n", target, c.SignOfBody(target))
			return surface.RenderBAV(os.Stdout, m)
		},
	}

	cmd.Flags().StringVar(&chartPath, "chart", "", "Path to a chart JSON file (required)")
	cmd.Flags().StringVar(&planetName, "planet", "", "Target planet (required)")
	_ = cmd.MarkFlagRequired("chart")
	_ = cmd.MarkFlagRequired("planet")

	return cmd
}

func planetByName(name string) (chart.Body, bool) {
	for _, p := range chart.Planets() {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}
	return 0, false
}
