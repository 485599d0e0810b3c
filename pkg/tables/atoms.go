package tables

import "math"

// buildAtomTypes derives the per-type table: observed AMBER type
// names, atom population, and the diagonal Lennard-Jones entry with
// its derived minimum radius and well depth.
func (in *inputs) buildAtomTypes() *Table {
	counts := make(map[int]int)
	for _, t := range in.atomTypeIndices {
		counts[t]++
	}

	table := emptyTable(
		"type_index", "amber_types", "atom_count",
		"pair_index", "acoef", "bcoef", "rmin", "epsilon",
	)
	nan := math.NaN()
	for t := 1; t <= in.ntypes; t++ {
		pairIndex := 0
		if offset := (t - 1) * (in.ntypes + 1); offset < len(in.nonbondIndex) {
			pairIndex = in.nonbondIndex[offset]
		}
		acoef, bcoef := nan, nan
		if pairIndex > 0 && pairIndex <= len(in.acoef) && pairIndex <= len(in.bcoef) {
			acoef = in.acoef[pairIndex-1]
			bcoef = in.bcoef[pairIndex-1]
		}
		rmin, epsilon := DiagonalLJ(acoef, bcoef)
		table.Rows = append(table.Rows, []any{
			t, in.typeNames[t], counts[t],
			pairIndex, cell(acoef), cell(bcoef), rmin, epsilon,
		})
	}
	return table
}
