// Package ashtakavarga implements the Grahabala Ashtakavarga scoring engine.
// For each of the seven classical planets it evaluates how every contributing
// body (the seven planets plus the Ascendant) casts bindus onto the twelve
// signs, and aggregates the per-planet tables into a combined Sarvashtakavarga.
package ashtakavarga

import "github.com/grahabala/grahabala/pkg/chart"

// HouseSet is the set of benefic relative houses (each in [1,12]) through
// which one contributing body awards a bindu for one target planet.
type HouseSet []int

// Contains reports whether house h is in the set.
func (hs HouseSet) Contains(h int) bool {
	for _, v := range hs {
		if v == h {
			return true
		}
	}
	return false
}

// GrandTotal is the total bindu capacity of the canonical table: the sum of
// all house-set sizes across the seven targets and eight contributors.
const GrandTotal = 337

// BeneficTable maps (target planet, contributing body) to the set of relative
// houses that award a bindu. It is astrological reference data following the
// traditional 337-point Parashari convention, populated once and never mutated.
type BeneficTable struct {
	// Houses is indexed by [target planet][contributing body].
	Houses [chart.NumPlanets][chart.NumBodies]HouseSet
	// PlanetTotals holds each target's documented bindu total, used by the
	// validator to detect accidental edits to the reference data.
	PlanetTotals [chart.NumPlanets]int
}

// Canonical returns the traditional 337-point benefic table.
// The data is reference material and must be shipped verbatim; the seven
// documented totals (48, 49, 39, 54, 56, 52, 39) sum to 337.
func Canonical() *BeneficTable {
	t := &BeneficTable{
		PlanetTotals: [chart.NumPlanets]int{48, 49, 39, 54, 56, 52, 39},
	}

	t.Houses[chart.Sun] = [chart.NumBodies]HouseSet{
		chart.Sun:       {1, 2, 4, 7, 8, 9, 10, 11},
		chart.Moon:      {3, 6, 10, 11},
		chart.Mars:      {1, 2, 4, 7, 8, 9, 10, 11},
		chart.Mercury:   {3, 5, 6, 9, 10, 11, 12},
		chart.Jupiter:   {5, 6, 9, 11},
		chart.Venus:     {6, 7, 12},
		chart.Saturn:    {1, 2, 4, 7, 8, 9, 10, 11},
		chart.Ascendant: {3, 4, 6, 10, 11, 12},
	}

	t.Houses[chart.Moon] = [chart.NumBodies]HouseSet{
		chart.Sun:       {3, 6, 7, 8, 10, 11},
		chart.Moon:      {1, 3, 6, 7, 10, 11},
		chart.Mars:      {2, 3, 5, 6, 9, 10, 11},
		chart.Mercury:   {1, 3, 4, 5, 7, 8, 10, 11},
		chart.Jupiter:   {1, 4, 7, 8, 10, 11, 12},
		chart.Venus:     {3, 4, 5, 7, 9, 10, 11},
		chart.Saturn:    {3, 5, 6, 11},
		chart.Ascendant: {3, 6, 10, 11},
	}

	t.Houses[chart.Mars] = [chart.NumBodies]HouseSet{
		chart.Sun:       {3, 5, 6, 10, 11},
		chart.Moon:      {3, 6, 11},
		chart.Mars:      {1, 2, 4, 7, 8, 10, 11},
		chart.Mercury:   {3, 5, 6, 11},
		chart.Jupiter:   {6, 10, 11, 12},
		chart.Venus:     {6, 8, 11, 12},
		chart.Saturn:    {1, 4, 7, 8, 9, 10, 11},
		chart.Ascendant: {1, 3, 6, 10, 11},
	}

	t.Houses[chart.Mercury] = [chart.NumBodies]HouseSet{
		chart.Sun:       {5, 6, 9, 11, 12},
		chart.Moon:      {2, 4, 6, 8, 10, 11},
		chart.Mars:      {1, 2, 4, 7, 8, 9, 10, 11},
		chart.Mercury:   {1, 3, 5, 6, 9, 10, 11, 12},
		chart.Jupiter:   {6, 8, 11, 12},
		chart.Venus:     {1, 2, 3, 4, 5, 8, 9, 11},
		chart.Saturn:    {1, 2, 4, 7, 8, 9, 10, 11},
		chart.Ascendant: {1, 2, 4, 6, 8, 10, 11},
	}

	t.Houses[chart.Jupiter] = [chart.NumBodies]HouseSet{
		chart.Sun:       {1, 2, 3, 4, 7, 8, 9, 10, 11},
		chart.Moon:      {2, 5, 7, 9, 11},
		chart.Mars:      {1, 2, 4, 7, 8, 10, 11},
		chart.Mercury:   {1, 2, 4, 5, 6, 9, 10, 11},
		chart.Jupiter:   {1, 2, 3, 4, 7, 8, 10, 11},
		chart.Venus:     {2, 5, 6, 9, 10, 11},
		chart.Saturn:    {3, 5, 6, 12},
		chart.Ascendant: {1, 2, 4, 5, 6, 7, 9, 10, 11},
	}

	t.Houses[chart.Venus] = [chart.NumBodies]HouseSet{
		chart.Sun:       {8, 11, 12},
		chart.Moon:      {1, 2, 3, 4, 5, 8, 9, 11, 12},
		chart.Mars:      {3, 5, 6, 9, 11, 12},
		chart.Mercury:   {3, 5, 6, 9, 11},
		chart.Jupiter:   {5, 8, 9, 10, 11},
		chart.Venus:     {1, 2, 3, 4, 5, 8, 9, 10, 11},
		chart.Saturn:    {3, 4, 5, 8, 9, 10, 11},
		chart.Ascendant: {1, 2, 3, 4, 5, 8, 9, 11},
	}

	t.Houses[chart.Saturn] = [chart.NumBodies]HouseSet{
		chart.Sun:       {1, 2, 4, 7, 8, 10, 11},
		chart.Moon:      {3, 6, 11},
		chart.Mars:      {3, 5, 6, 10, 11, 12},
		chart.Mercury:   {6, 8, 9, 10, 11, 12},
		chart.Jupiter:   {5, 6, 11, 12},
		chart.Venus:     {6, 11, 12},
		chart.Saturn:    {3, 5, 6, 11},
		chart.Ascendant: {1, 3, 4, 6, 10, 11},
	}

	return t
}
