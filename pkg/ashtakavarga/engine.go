package ashtakavarga

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grahabala/grahabala/pkg/chart"
)

// Engine computes Bhinnashtakavarga matrices and Sarvashtakavarga tables
// against one validated benefic table. The table is read-only for the
// engine's lifetime, so an Engine is safe for concurrent use.
type Engine struct {
	table *BeneficTable
}

// NewEngine creates an engine over the given benefic table, validating it
// first. A nil table selects the canonical 337-point table. An inconsistent
// table is a configuration error and refuses to construct.
func NewEngine(table *BeneficTable) (*Engine, error) {
	if table == nil {
		table = Canonical()
	}
	if _, err := Validate(table); err != nil {
		return nil, fmt.Errorf("benefic table validation: %w", err)
	}
	return &Engine{table: table}, nil
}

// Table returns the engine's benefic table.
func (e *Engine) Table() *BeneficTable {
	return e.table
}

// BAV computes the target planet's bindu matrix from a length-8 slice of
// sign indices ordered [Sun..Saturn, Ascendant]. Out-of-range sign indices
// are a caller error and are rejected rather than wrapped a second time.
func (e *Engine) BAV(target chart.Body, signs []chart.Sign) (*BinduMatrix, error) {
	if !target.IsPlanet() {
		return nil, fmt.Errorf("target %s is not a scoring planet", target)
	}
	if len(signs) != chart.NumBodies {
		return nil, fmt.Errorf("bav requires %d sign indices, got %d", chart.NumBodies, len(signs))
	}
	for i, s := range signs {
		if !s.Valid() {
			return nil, fmt.Errorf("sign index for %s out of range: %d", chart.Body(i), s)
		}
	}

	m := &BinduMatrix{
		Target:     target,
		TargetName: target.String(),
	}

	for s := chart.Sign(0); s < chart.NumSigns; s++ {
		for _, c := range chart.Bodies() {
			h := chart.RelativeHouse(signs[c], s)
			if e.table.Houses[target][c].Contains(h) {
				m.Cells[s][c] = 1
				m.SignTotals[s]++
				m.ContributorTotals[c]++
				m.Total++
			}
		}
	}

	return m, nil
}

// SAV combines the seven planets' bindu matrices into one Sarvashtakavarga.
// Exactly the seven planet targets are required; a partial aggregation is not
// a valid table and is never produced.
func (e *Engine) SAV(matrices map[chart.Body]*BinduMatrix) (*SarvaTable, error) {
	if len(matrices) != chart.NumPlanets {
		return nil, fmt.Errorf("sav requires %d bindu matrices, got %d", chart.NumPlanets, len(matrices))
	}

	t := &SarvaTable{}
	for _, p := range chart.Planets() {
		m, ok := matrices[p]
		if !ok || m == nil {
			return nil, fmt.Errorf("sav missing bindu matrix for %s", p)
		}
		for s := 0; s < chart.NumSigns; s++ {
			t.SignScores[s] += m.SignTotals[s]
		}
		t.PlanetTotals[p] = m.Total
		t.GrandTotal += m.Total
	}

	return t, nil
}

// Score runs the full pipeline for one chart: the seven BAV matrices plus
// their SAV aggregation, packaged as one immutable Report. The computation
// is pure; re-running with an identical chart yields identical tables.
func (e *Engine) Score(c *chart.Chart) (*Report, error) {
	if c == nil {
		return nil, fmt.Errorf("chart is nil")
	}

	report := &Report{
		ID:         uuid.New().String(),
		Chart:      c,
		AnalyzedAt: time.Now().UTC(),
	}

	matrices := make(map[chart.Body]*BinduMatrix, chart.NumPlanets)
	for _, p := range chart.Planets() {
		m, err := e.BAV(p, c.Signs[:])
		if err != nil {
			return nil, fmt.Errorf("bav for %s: %w", p, err)
		}
		report.BAV[p] = m
		matrices[p] = m
	}

	sav, err := e.SAV(matrices)
	if err != nil {
		return nil, fmt.Errorf("sav aggregation: %w", err)
	}
	report.SAV = sav

	return report, nil
}
