package tables

import (
	"fmt"

	"github.com/yaklabco/topview/pkg/records"
)

type quad struct{ I, J, K, L int }

// buildDihedralTypes lists every dihedral term in file order. Multiple
// periodicity terms of the same (i,j,k,l) quad share an ID; idx is the
// unique running term index also used by the selection index.
func (in *inputs) buildDihedralTypes() *Table {
	columns := []string{
		"ID", "idx", "ijkl indices", "ijkl names", "ijkl types",
		"rotatable", "k", "pdcty", "phase", "scee", "scnb",
	}
	if len(in.dihedrals) == 0 {
		return emptyTable(columns...)
	}

	rotatable := in.rotatableBonds()
	table := emptyTable(columns...)
	ids := make(map[quad]int)
	nextID := 1
	for _, d := range in.dihedrals {
		key := quad{d.I, d.J, d.K, d.L}
		id, ok := ids[key]
		if !ok {
			id = nextID
			nextID++
			ids[key] = id
		}
		flag := "F"
		a, b := sortedPair(d.J, d.K)
		if rotatable[[2]int{a, b}] {
			flag = "T"
		}
		table.Rows = append(table.Rows, []any{
			id, d.Term,
			formatQuad(d.I, d.J, d.K, d.L),
			in.quadLabels(in.atomNames, d),
			in.quadLabels(in.amberAtomTypes, d),
			flag,
			cell(lookupParam(in.dihedralForce, d.Param)),
			cell(lookupParam(in.dihedralPeriodicity, d.Param)),
			cell(lookupParam(in.dihedralPhase, d.Param)),
			cell(lookupParam(in.sceeScale, d.Param)),
			cell(lookupParam(in.scnbScale, d.Param)),
		})
	}
	return table
}

// buildImproperTypes lists only the terms whose raw fourth pointer was
// negative. The idx column keeps the term numbering of the full
// dihedral listing so both tables cross-reference.
func (in *inputs) buildImproperTypes() *Table {
	columns := []string{
		"ID", "idx", "ijkl indices", "ijkl names", "ijkl types",
		"force_constant", "periodicity", "phase", "scee", "scnb",
	}
	table := emptyTable(columns...)
	ids := make(map[quad]int)
	nextID := 1
	for _, d := range in.dihedrals {
		if !d.Improper {
			continue
		}
		key := quad{d.I, d.J, d.K, d.L}
		id, ok := ids[key]
		if !ok {
			id = nextID
			nextID++
			ids[key] = id
		}
		table.Rows = append(table.Rows, []any{
			id, d.Term,
			formatQuad(d.I, d.J, d.K, d.L),
			in.quadLabels(in.atomNames, d),
			in.quadLabels(in.amberAtomTypes, d),
			cell(lookupParam(in.dihedralForce, d.Param)),
			cell(lookupParam(in.dihedralPeriodicity, d.Param)),
			cell(lookupParam(in.dihedralPhase, d.Param)),
			cell(lookupParam(in.sceeScale, d.Param)),
			cell(lookupParam(in.scnbScale, d.Param)),
		})
	}
	return table
}

func formatQuad(i, j, k, l int) string {
	return fmt.Sprintf("%d, %d, %d, %d", i, j, k, l)
}

func (in *inputs) quadLabels(values []string, d records.Dihedral) string {
	return fmt.Sprintf("%s, %s, %s, %s",
		labelAt(values, d.I), labelAt(values, d.J),
		labelAt(values, d.K), labelAt(values, d.L))
}
