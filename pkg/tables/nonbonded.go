package tables

import "sort"

type oneFourGroupKey struct {
	TypeA, TypeB, Param         int
	Scee, Scnb                  uint64
	PairIndex                   int
	ACoef, BCoef, Rmin, Epsilon uint64
	Source                      string
}

// buildOneFour groups the terminal 1-4 pairs of non-excluded,
// non-improper dihedral terms, joining each pair's scaling factors
// with its nonbonded matrix entry.
func (in *inputs) buildOneFour() *Table {
	columns := []string{
		"type_a", "type_a_name", "type_b", "type_b_name",
		"param_index", "scee", "scnb", "pair_index",
		"acoef", "bcoef", "rmin", "epsilon", "source", "count",
	}

	type group struct {
		key        oneFourGroupKey
		scee, scnb float64
		values     pairValues
		count      int
		seen       int
	}
	groups := make(map[oneFourGroupKey]*group)
	order := 0
	for _, d := range in.dihedrals {
		if d.ExcludedOneFour || d.Improper {
			continue
		}
		typeA := in.typeAt(d.I)
		typeB := in.typeAt(d.L)
		scee := lookupParam(in.sceeScale, d.Param)
		scnb := lookupParam(in.scnbScale, d.Param)
		pairIndex, values := lookupNonbondedPair(
			in.nonbondIndex, in.ntypes, typeA, typeB,
			in.acoef, in.bcoef, in.hbondACoef, in.hbondBCoef,
		)
		ta, tb := sortedPair(typeA, typeB)
		key := oneFourGroupKey{
			TypeA: ta, TypeB: tb, Param: d.Param,
			Scee: floatKey(scee), Scnb: floatKey(scnb),
			PairIndex: pairIndex,
			ACoef:     floatKey(values.ACoef), BCoef: floatKey(values.BCoef),
			Rmin: floatKey(values.Rmin), Epsilon: floatKey(values.Epsilon),
			Source: values.Source,
		}
		g := groups[key]
		if g == nil {
			g = &group{key: key, scee: scee, scnb: scnb, values: values, seen: order}
			order++
			groups[key] = g
		}
		g.count++
	}
	if len(groups) == 0 {
		return emptyTable(columns...)
	}

	sorted := make([]*group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].key, sorted[j].key
		if a.TypeA != b.TypeA {
			return a.TypeA < b.TypeA
		}
		if a.TypeB != b.TypeB {
			return a.TypeB < b.TypeB
		}
		if a.Param != b.Param {
			return a.Param < b.Param
		}
		return sorted[i].seen < sorted[j].seen
	})

	table := emptyTable(columns...)
	for _, g := range sorted {
		table.Rows = append(table.Rows, []any{
			g.key.TypeA, in.typeNames[g.key.TypeA],
			g.key.TypeB, in.typeNames[g.key.TypeB],
			g.key.Param, cell(g.scee), cell(g.scnb),
			g.key.PairIndex,
			cell(g.values.ACoef), cell(g.values.BCoef),
			cell(g.values.Rmin), cell(g.values.Epsilon),
			g.values.Source, g.count,
		})
	}
	return table
}

// buildNonbondedPairs walks the upper triangle of the ntypes × ntypes
// index matrix in row-major order, one row per type pair.
func (in *inputs) buildNonbondedPairs() *Table {
	table := emptyTable(
		"type_a", "type_a_name", "type_b", "type_b_name",
		"pair_index", "acoef", "bcoef", "rmin", "epsilon", "source",
	)
	for i := 0; i < in.ntypes; i++ {
		for j := i; j < in.ntypes; j++ {
			pairIndex := 0
			if idx := i*in.ntypes + j; idx < len(in.nonbondIndex) {
				pairIndex = in.nonbondIndex[idx]
			}
			values := lookupPairValues(
				pairIndex, in.acoef, in.bcoef, in.hbondACoef, in.hbondBCoef)
			table.Rows = append(table.Rows, []any{
				i + 1, in.typeNames[i+1],
				j + 1, in.typeNames[j+1],
				pairIndex,
				cell(values.ACoef), cell(values.BCoef),
				cell(values.Rmin), cell(values.Epsilon),
				values.Source,
			})
		}
	}
	return table
}
