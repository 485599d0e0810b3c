package tables

import "sort"

type bondGroupKey struct {
	TypeA, TypeB, Param int
	Force, Equil        uint64
}

// buildBondTypes groups bond records by canonical endpoint types,
// parameter index, and parameter values.
func (in *inputs) buildBondTypes() *Table {
	columns := []string{
		"type_a", "type_a_name", "type_b", "type_b_name",
		"param_index", "force_constant", "equil_value", "count",
	}
	if len(in.bonds) == 0 {
		return emptyTable(columns...)
	}

	type group struct {
		key          bondGroupKey
		force, equil float64
		count        int
		seen         int
	}
	groups := make(map[bondGroupKey]*group)
	order := 0
	for _, b := range in.bonds {
		typeA := in.typeAt(b.A)
		typeB := in.typeAt(b.B)
		force := lookupParam(in.bondForce, b.Param)
		equil := lookupParam(in.bondEquil, b.Param)
		ta, tb := sortedPair(typeA, typeB)
		key := bondGroupKey{ta, tb, b.Param, floatKey(force), floatKey(equil)}
		g := groups[key]
		if g == nil {
			g = &group{key: key, force: force, equil: equil, seen: order}
			order++
			groups[key] = g
		}
		g.count++
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
			g.key.Param, cell(g.force), cell(g.equil), g.count,
		})
	}
	return table
}

type angleGroupKey struct {
	TypeI, TypeJ, TypeK, Param int
	Force, Equil               uint64
}

// buildAngleTypes groups angle records. Canonicalization sorts only
// the two terminal types; the middle atom's type stays in place.
func (in *inputs) buildAngleTypes() *Table {
	columns := []string{
		"type_i", "type_i_name", "type_j", "type_j_name",
		"type_k", "type_k_name", "param_index",
		"force_constant", "equil_value", "count",
	}
	if len(in.angles) == 0 {
		return emptyTable(columns...)
	}

	type group struct {
		key          angleGroupKey
		force, equil float64
		count        int
		seen         int
	}
	groups := make(map[angleGroupKey]*group)
	order := 0
	for _, a := range in.angles {
		typeI := in.typeAt(a.I)
		typeJ := in.typeAt(a.J)
		typeK := in.typeAt(a.K)
		force := lookupParam(in.angleForce, a.Param)
		equil := lookupParam(in.angleEquil, a.Param)
		ti, tk := typeI, typeK
		if ti > tk {
			ti, tk = tk, ti
		}
		key := angleGroupKey{ti, typeJ, tk, a.Param, floatKey(force), floatKey(equil)}
		g := groups[key]
		if g == nil {
			g = &group{key: key, force: force, equil: equil, seen: order}
			order++
			groups[key] = g
		}
		g.count++
	}

	sorted := make([]*group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].key, sorted[j].key
		if a.TypeI != b.TypeI {
			return a.TypeI < b.TypeI
		}
		if a.TypeJ != b.TypeJ {
			return a.TypeJ < b.TypeJ
		}
		if a.TypeK != b.TypeK {
			return a.TypeK < b.TypeK
		}
		if a.Param != b.Param {
			return a.Param < b.Param
		}
		return sorted[i].seen < sorted[j].seen
	})

	table := emptyTable(columns...)
	for _, g := range sorted {
		table.Rows = append(table.Rows, []any{
			g.key.TypeI, in.typeNames[g.key.TypeI],
			g.key.TypeJ, in.typeNames[g.key.TypeJ],
			g.key.TypeK, in.typeNames[g.key.TypeK],
			g.key.Param, cell(g.force), cell(g.equil), g.count,
		})
	}
	return table
}
