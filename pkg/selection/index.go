// Package selection maps derived-table rows back to the concrete atom
// serials that produced them, with deterministic cursor-based cycling
// through multiple matches.
package selection

import (
	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/records"
)

// BondKey identifies a bond-type or 1-4 table row: canonical endpoint
// types plus parameter index.
type BondKey struct {
	TypeA, TypeB, Param int
}

// AngleKey identifies an angle-type table row: canonical terminal
// types around the fixed middle type, plus parameter index.
type AngleKey struct {
	TypeI, TypeJ, TypeK, Param int
}

// Index holds the reverse lookups from table rows to atom serials.
// Built once per load, read-only thereafter.
type Index struct {
	// AtomSerialsByType lists atom serials per positive type index, in
	// serial order.
	AtomSerialsByType map[int][]int

	// BondsByKey lists the concrete atom pairs that collapsed into one
	// bond-type row.
	BondsByKey map[BondKey][][2]int

	// AnglesByKey lists the concrete atom triplets per angle-type row.
	AnglesByKey map[AngleKey][][3]int

	// DihedralsByTerm maps the unique term index to its quad.
	DihedralsByTerm map[int][4]int

	// OneFourByKey lists the terminal atom pairs per 1-4 row.
	OneFourByKey map[BondKey][][2]int
}

// Build derives the selection index from a tokenized file. Pure and
// deterministic: depends only on the sections and the pointer
// contract.
func Build(file *parm.File, pointers *parm.PointerSet) (*Index, error) {
	natom := pointers.NAtom()
	if natom <= 0 {
		return nil, parm.FormatErrorf("invalid POINTERS NATOM %d", natom)
	}
	typeIndices, err := file.IntSection("ATOM_TYPE_INDEX", natom)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		AtomSerialsByType: make(map[int][]int),
		BondsByKey:        make(map[BondKey][][2]int),
		AnglesByKey:       make(map[AngleKey][][3]int),
		DihedralsByTerm:   make(map[int][4]int),
		OneFourByKey:      make(map[BondKey][][2]int),
	}
	for i, t := range typeIndices {
		if t <= 0 {
			continue
		}
		idx.AtomSerialsByType[t] = append(idx.AtomSerialsByType[t], i+1)
	}

	typeAt := func(serial int) int {
		i := serial - 1
		if i < 0 || i >= len(typeIndices) || typeIndices[i] <= 0 {
			return 0
		}
		return typeIndices[i]
	}

	bonds, err := records.Bonds(file, pointers)
	if err != nil {
		return nil, err
	}
	for _, b := range bonds {
		typeA := typeAt(b.A)
		typeB := typeAt(b.B)
		if typeA == 0 || typeB == 0 {
			continue
		}
		ta, tb := sortedPair(typeA, typeB)
		key := BondKey{ta, tb, b.Param}
		idx.BondsByKey[key] = append(idx.BondsByKey[key], [2]int{b.A, b.B})
	}

	angles, err := records.Angles(file, pointers)
	if err != nil {
		return nil, err
	}
	for _, a := range angles {
		typeI := typeAt(a.I)
		typeJ := typeAt(a.J)
		typeK := typeAt(a.K)
		if typeI == 0 || typeJ == 0 || typeK == 0 {
			continue
		}
		ti, tk := sortedPair(typeI, typeK)
		key := AngleKey{ti, typeJ, tk, a.Param}
		idx.AnglesByKey[key] = append(idx.AnglesByKey[key], [3]int{a.I, a.J, a.K})
	}

	dihedrals, err := records.Dihedrals(file, pointers)
	if err != nil {
		return nil, err
	}
	for _, d := range dihedrals {
		idx.DihedralsByTerm[d.Term] = [4]int{d.I, d.J, d.K, d.L}
		if d.ExcludedOneFour || d.Improper {
			continue
		}
		typeI := typeAt(d.I)
		typeL := typeAt(d.L)
		if typeI == 0 || typeL == 0 {
			continue
		}
		ta, tb := sortedPair(typeI, typeL)
		key := BondKey{ta, tb, d.Param}
		idx.OneFourByKey[key] = append(idx.OneFourByKey[key], [2]int{d.I, d.L})
	}

	return idx, nil
}

func sortedPair(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}
