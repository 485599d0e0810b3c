package model

import (
	"math"
	"strings"
	"unicode"

	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/tables"
)

// ChargeScale converts the stored charge column to elementary charge
// units (the AMBER convention of sqrt(332.0522) for kcal/mol
// electrostatics).
const ChargeScale = 18.2223

// LJEntry carries the diagonal Lennard-Jones parameters of one atom
// type.
type LJEntry struct {
	PairIndex int     `json:"pair_index"`
	ACoef     float64 `json:"acoef"`
	BCoef     float64 `json:"bcoef"`
	Rmin      float64 `json:"rmin"`
	Epsilon   float64 `json:"epsilon"`
}

// AtomMeta is the decoded per-atom bundle served by atom queries.
// Float fields are NaN when the backing section is absent.
type AtomMeta struct {
	Serial       int      `json:"serial"`
	Name         string   `json:"name"`
	Element      string   `json:"element"`
	AtomicNumber int      `json:"atomic_number"`
	TypeIndex    int      `json:"type_index"`
	TypeName     string   `json:"type_name"`
	ChargeRaw    string   `json:"charge_raw"`
	Charge       float64  `json:"charge"`
	Mass         float64  `json:"mass"`
	Resid        int      `json:"resid"`
	Resname      string   `json:"resname"`
	ResidueIndex int      `json:"residue_index"`
	LJ           *LJEntry `json:"lj,omitempty"`
}

// buildAtoms decodes the per-atom sections into metadata records.
// Missing optional sections degrade to zero values rather than failing
// the load; only the atom count itself is mandatory.
func buildAtoms(cache *parm.ValueCache, pointers *parm.PointerSet) ([]AtomMeta, error) {
	natom := pointers.NAtom()
	if natom <= 0 {
		return nil, parm.FormatErrorf("invalid POINTERS NATOM %d", natom)
	}
	file := cache.File()

	names := sectionStrings(file, "ATOM_NAME")
	typeNames := sectionStrings(file, "AMBER_ATOM_TYPE")
	chargeRaw := sectionStrings(file, "CHARGE")
	atomicNumbers := cache.Ints("ATOMIC_NUMBER")
	masses := cache.Floats("MASS")
	typeIndices := cache.Ints("ATOM_TYPE_INDEX")
	residueOf := residueAssignment(file, cache, natom)
	ljByType := diagonalLJByType(cache, pointers.NTypes())

	atoms := make([]AtomMeta, natom)
	for i := range atoms {
		serial := i + 1
		meta := AtomMeta{
			Serial: serial,
			Name:   stringAt(names, i),
			Charge: math.NaN(),
			Mass:   math.NaN(),
		}
		if i < len(atomicNumbers) {
			meta.AtomicNumber = atomicNumbers[i]
		}
		meta.Element = elementSymbol(meta.AtomicNumber, meta.Name)
		if i < len(typeIndices) {
			meta.TypeIndex = typeIndices[i]
		}
		meta.TypeName = stringAt(typeNames, i)
		if raw := stringAt(chargeRaw, i); raw != "" {
			meta.ChargeRaw = raw
			meta.Charge = parm.ParseFloat(parm.Token{Value: raw}) / ChargeScale
		}
		if i < len(masses) {
			meta.Mass = masses[i]
		}
		if res := residueOf[i]; res != nil {
			meta.Resid = res.index
			meta.Resname = res.label
			meta.ResidueIndex = res.index
		}
		if meta.TypeIndex > 0 {
			if entry, ok := ljByType[meta.TypeIndex]; ok {
				lj := entry
				meta.LJ = &lj
			}
		}
		atoms[i] = meta
	}
	return atoms, nil
}

type residueRef struct {
	index int
	label string
}

// residueAssignment maps each 0-based atom index to its owning
// residue, derived from the RESIDUE_POINTER start serials.
func residueAssignment(file *parm.File, cache *parm.ValueCache, natom int) []*residueRef {
	assignment := make([]*residueRef, natom)
	starts := cache.Ints("RESIDUE_POINTER")
	labels := sectionStrings(file, "RESIDUE_LABEL")
	for r := 0; r < len(starts); r++ {
		begin := starts[r]
		end := natom + 1
		if r+1 < len(starts) {
			end = starts[r+1]
		}
		ref := &residueRef{index: r + 1, label: stringAt(labels, r)}
		for serial := begin; serial < end; serial++ {
			if serial >= 1 && serial <= natom {
				assignment[serial-1] = ref
			}
		}
	}
	return assignment
}

// diagonalLJByType derives per-type Lennard-Jones parameters from the
// diagonal of the nonbonded index matrix. Types whose diagonal entry is
// non-positive or out of range are omitted.
func diagonalLJByType(cache *parm.ValueCache, ntypes int) map[int]LJEntry {
	entries := make(map[int]LJEntry)
	if ntypes <= 0 {
		return entries
	}
	nonbond := cache.Ints("NONBONDED_PARM_INDEX")
	acoef := cache.Floats("LENNARD_JONES_ACOEF")
	bcoef := cache.Floats("LENNARD_JONES_BCOEF")
	for t := 1; t <= ntypes; t++ {
		idx := (t-1)*ntypes + (t - 1)
		if idx >= len(nonbond) {
			continue
		}
		pairIndex := nonbond[idx]
		if pairIndex <= 0 || pairIndex > len(acoef) || pairIndex > len(bcoef) {
			continue
		}
		a := acoef[pairIndex-1]
		b := bcoef[pairIndex-1]
		rmin, epsilon := tables.DiagonalLJ(a, b)
		entries[t] = LJEntry{
			PairIndex: pairIndex,
			ACoef:     a,
			BCoef:     b,
			Rmin:      rmin,
			Epsilon:   epsilon,
		}
	}
	return entries
}

func sectionStrings(file *parm.File, name string) []string {
	section := file.Section(name)
	if section == nil {
		return nil
	}
	values := make([]string, len(section.Tokens))
	for i, token := range section.Tokens {
		values[i] = strings.TrimSpace(token.Value)
	}
	return values
}

func stringAt(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}

// elementSymbols covers the atomic numbers that occur in biomolecular
// topologies; anything else falls back to a name-based guess.
var elementSymbols = map[int]string{
	1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O",
	9: "F", 10: "Ne", 11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P",
	16: "S", 17: "Cl", 18: "Ar", 19: "K", 20: "Ca", 25: "Mn", 26: "Fe",
	27: "Co", 28: "Ni", 29: "Cu", 30: "Zn", 34: "Se", 35: "Br", 47: "Ag",
	48: "Cd", 53: "I", 55: "Cs", 56: "Ba", 78: "Pt", 79: "Au", 80: "Hg",
	82: "Pb",
}

func elementSymbol(atomicNumber int, name string) string {
	if symbol, ok := elementSymbols[atomicNumber]; ok {
		return symbol
	}
	return guessElement(name)
}

// twoLetterElements are the symbols recognized when the first two
// name characters form a known element.
var twoLetterElements = map[string]bool{
	"CL": true, "BR": true, "NA": true, "MG": true, "ZN": true,
	"FE": true, "CA": true, "LI": true, "SI": true, "AL": true,
	"CU": true, "MN": true, "CO": true, "NI": true, "CD": true,
	"HG": true, "PB": true, "AG": true, "AU": true,
}

// guessElement infers an element symbol from an atom name: leading
// digits are stripped, known two-letter symbols win, then a lowercase
// second character marks a two-letter symbol, else the first letter.
func guessElement(atomName string) string {
	name := strings.TrimSpace(atomName)
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	name = name[i:]
	if name == "" {
		return ""
	}
	if len(name) >= 2 {
		upper := strings.ToUpper(name[:2])
		if twoLetterElements[upper] {
			return upper[:1] + strings.ToLower(upper[1:])
		}
	}
	runes := []rune(name)
	if len(runes) > 1 && unicode.IsLower(runes[1]) {
		return strings.ToUpper(string(runes[0])) + string(runes[1])
	}
	return strings.ToUpper(string(runes[0]))
}
