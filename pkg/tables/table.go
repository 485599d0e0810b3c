// Package tables aggregates parm7 records into the seven derived
// summary tables: atom types, bond/angle/dihedral/improper types,
// 1-4 nonbonded pairs, and the full nonbonded pair matrix.
package tables

import "math"

// Table names, also used as selection keys by the model.
const (
	AtomTypes        = "atom_types"
	BondTypes        = "bond_types"
	AngleTypes       = "angle_types"
	DihedralTypes    = "dihedral_types"
	ImproperTypes    = "improper_types"
	OneFourNonbonded = "one_four_nonbonded"
	NonbondedPairs   = "nonbonded_pairs"
)

// Names lists all table identifiers in display order.
var Names = []string{
	AtomTypes, BondTypes, AngleTypes, DihedralTypes,
	ImproperTypes, OneFourNonbonded, NonbondedPairs,
}

// Table is one derived summary table. Cells are int, float64, string,
// or nil; NaN parameter values are emitted as nil so callers render
// them as "no value".
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func emptyTable(columns ...string) *Table {
	return &Table{Columns: columns, Rows: [][]any{}}
}

// cell converts a float to a table cell, mapping NaN to nil.
func cell(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// lookupParam resolves a 1-based parameter index against a parameter
// array, yielding NaN for out-of-range indices.
func lookupParam(values []float64, index int) float64 {
	if index < 1 || index > len(values) {
		return math.NaN()
	}
	return values[index-1]
}

// floatKey normalizes a float for use in a grouping key. All NaNs
// collapse to one key so rows missing the same optional parameter
// group together.
func floatKey(v float64) uint64 {
	if math.IsNaN(v) {
		return ^uint64(0)
	}
	return math.Float64bits(v)
}

func sortedPair(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
