package ashtakavarga

import (
	"fmt"

	"github.com/grahabala/grahabala/pkg/chart"
)

// TableTotals is the validator's diagnostic output: the bindu capacity of
// each target planet's row and their sum across the whole table.
type TableTotals struct {
	PerPlanet  [chart.NumPlanets]int `json:"per_planet"`
	GrandTotal int                   `json:"grand_total"`
}

// Validate checks the benefic table's structural invariant: every house value
// lies in [1,12] with no duplicates, each target's eight house-set sizes sum
// to its documented total, and the seven totals sum to the scheme's 337-point
// capacity. A failure means the reference data was edited incorrectly, not
// that any particular chart is wrong.
func Validate(t *BeneficTable) (TableTotals, error) {
	var totals TableTotals
	if t == nil {
		return totals, fmt.Errorf("benefic table is nil")
	}

	for _, target := range chart.Planets() {
		sum := 0
		for _, contributor := range chart.Bodies() {
			hs := t.Houses[target][contributor]
			if len(hs) == 0 {
				return totals, fmt.Errorf("table[%s][%s]: empty house set", target, contributor)
			}
			seen := [chart.NumSigns + 1]bool{}
			for _, h := range hs {
				if h < 1 || h > chart.NumSigns {
					return totals, fmt.Errorf("table[%s][%s]: house %d outside [1,12]", target, contributor, h)
				}
				if seen[h] {
					return totals, fmt.Errorf("table[%s][%s]: duplicate house %d", target, contributor, h)
				}
				seen[h] = true
			}
			sum += len(hs)
		}
		if sum != t.PlanetTotals[target] {
			return totals, fmt.Errorf("table[%s]: bindu total %d, documented %d", target, sum, t.PlanetTotals[target])
		}
		totals.PerPlanet[target] = sum
		totals.GrandTotal += sum
	}

	if totals.GrandTotal != GrandTotal {
		return totals, fmt.Errorf("table grand total %d, expected %d", totals.GrandTotal, GrandTotal)
	}

	return totals, nil
}
