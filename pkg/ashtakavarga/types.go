package ashtakavarga

import (
	"time"

	"github.com/grahabala/grahabala/pkg/chart"
)

// BinduMatrix is the Bhinnashtakavarga of one target planet: a 12x8 grid of
// 0/1 bindus (sign x contributing body) with derived totals.
// Immutable once computed.
type BinduMatrix struct {
	Target     chart.Body `json:"target"`
	TargetName string     `json:"target_name"`

	// Cells is indexed by [sign][contributing body].
	Cells [chart.NumSigns][chart.NumBodies]int `json:"cells"`

	// SignTotals is the per-sign score for the target planet, each in [0,8].
	SignTotals [chart.NumSigns]int `json:"sign_totals"`

	// ContributorTotals counts each body's bindus across all twelve signs.
	// Always equals the size of the contributor's benefic house set.
	ContributorTotals [chart.NumBodies]int `json:"contributor_totals"`

	// Total is the matrix grand total (sum of SignTotals).
	Total int `json:"total"`
}

// SarvaTable is the combined Sarvashtakavarga across the seven planets.
// Immutable once computed.
type SarvaTable struct {
	// SignScores is the combined per-sign score, each in [0,56].
	SignScores [chart.NumSigns]int `json:"sign_scores"`

	// PlanetTotals is each planet's own matrix grand total. The realized
	// value depends on the chart; only the table's 337-point capacity is a
	// build-time constant.
	PlanetTotals [chart.NumPlanets]int `json:"planet_totals"`

	// GrandTotal is the sum of all twelve sign scores, equivalently of the
	// seven planet totals.
	GrandTotal int `json:"grand_total"`
}

// Report is the complete output of scoring one chart: the seven
// Bhinnashtakavarga matrices in canonical planet order plus the
// Sarvashtakavarga. This is the unit the surfaces and stores operate on.
type Report struct {
	ID         string                         `json:"id"`
	Chart      *chart.Chart                   `json:"chart"`
	BAV        [chart.NumPlanets]*BinduMatrix `json:"bav"`
	SAV        *SarvaTable                    `json:"sav"`
	AnalyzedAt time.Time                      `json:"analyzed_at"`
}
