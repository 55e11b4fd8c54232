package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/grahabala/grahabala/pkg/ashtakavarga"
	"github.com/grahabala/grahabala/pkg/chart"
)

// TerminalRenderer renders a Report as colored terminal tables.
type TerminalRenderer struct {
	// ShowBAV includes the seven per-planet bindu grids, not just the SAV table.
	ShowBAV bool
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

// scoreColor grades a combined SAV sign score. The classical reading treats
// scores of 28 and above as favorable and below 25 as weak.
func scoreColor(score int) string {
	switch {
	case score >= 28:
		return colorGreen
	case score >= 25:
		return colorYellow
	default:
		return colorRed
	}
}

func (r *TerminalRenderer) Render(w io.Writer, report *ashtakavarga.Report) error {
	fmt.Fprintf(w, "%s\n\n", bold(fmt.Sprintf("Grahabala: Sarvashtakavarga — total %d", report.SAV.GrandTotal)))

	// SAV table
	fmt.Fprintln(w, bold("Sign scores:"))
	for s := 0; s < chart.NumSigns; s++ {
		score := report.SAV.SignScores[s]
		fmt.Fprintf(w, "  %-12s %s\n",
			chart.Sign(s), colored(fmt.Sprintf("%2d", score), scoreColor(score)))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, bold("Planet totals:"))
	for _, p := range chart.Planets() {
		fmt.Fprintf(w, "  %-12s %2d\n", p, report.SAV.PlanetTotals[p])
	}
	fmt.Fprintln(w)

	if !r.ShowBAV {
		return nil
	}

	for _, p := range chart.Planets() {
		if err := RenderBAV(w, report.BAV[p]); err != nil {
			return err
		}
	}

	return nil
}

// RenderBAV writes one planet's bindu grid: signs as rows, contributors as
// columns, with row and column totals.
func RenderBAV(w io.Writer, m *ashtakavarga.BinduMatrix) error {
	if m == nil {
		return fmt.Errorf("bindu matrix is nil")
	}

	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("Bhinnashtakavarga of %s (total %d)", m.TargetName, m.Total)))

	// Header: contributor initials
	fmt.Fprintf(w, "  %-12s", "")
	for _, c := range chart.Bodies() {
		fmt.Fprintf(w, " %2s", c.String()[:2])
	}
	fmt.Fprintf(w, "  %s\n", dim("sum"))

	for s := 0; s < chart.NumSigns; s++ {
		fmt.Fprintf(w, "  %-12s", chart.Sign(s))
		for _, c := range chart.Bodies() {
			cell := " ."
			if m.Cells[s][c] == 1 {
				cell = " 1"
			}
			fmt.Fprintf(w, " %s", cell)
		}
		fmt.Fprintf(w, "  %2d\n", m.SignTotals[s])
	}

	fmt.Fprintf(w, "  %-12s", dim("sum"))
	for _, c := range chart.Bodies() {
		fmt.Fprintf(w, " %2d", m.ContributorTotals[c])
	}
	fmt.Fprintf(w, "\n\n")

	return nil
}
