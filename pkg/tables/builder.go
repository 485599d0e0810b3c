package tables

import (
	"sort"
	"strings"

	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/records"
)

// inputs carries every decoded section the table builders consume,
// validated once against the POINTERS contract.
type inputs struct {
	file     *parm.File
	pointers *parm.PointerSet

	ntypes int

	atomTypeIndices []int
	atomNames       []string
	amberAtomTypes  []string
	masses          []float64

	nonbondIndex []int
	acoef        []float64
	bcoef        []float64
	hbondACoef   []float64
	hbondBCoef   []float64

	bondForce  []float64
	bondEquil  []float64
	angleForce []float64
	angleEquil []float64

	dihedralForce       []float64
	dihedralPeriodicity []float64
	dihedralPhase       []float64
	sceeScale           []float64
	scnbScale           []float64

	typeNames map[int]string

	bonds     []records.Bond
	angles    []records.Angle
	dihedrals []records.Dihedral
}

// Build derives all seven summary tables from a tokenized file. Every
// section length is validated against POINTERS before any derivation;
// a mismatch fails the whole build with a format error.
func Build(file *parm.File, pointers *parm.PointerSet) (map[string]*Table, error) {
	in, err := collectInputs(file, pointers)
	if err != nil {
		return nil, err
	}

	out := map[string]*Table{
		AtomTypes:        in.buildAtomTypes(),
		BondTypes:        in.buildBondTypes(),
		AngleTypes:       in.buildAngleTypes(),
		DihedralTypes:    in.buildDihedralTypes(),
		ImproperTypes:    in.buildImproperTypes(),
		OneFourNonbonded: in.buildOneFour(),
		NonbondedPairs:   in.buildNonbondedPairs(),
	}
	return out, nil
}

func collectInputs(file *parm.File, pointers *parm.PointerSet) (*inputs, error) {
	natom := pointers.NAtom()
	ntypes := pointers.NTypes()
	if natom <= 0 || ntypes <= 0 {
		return nil, parm.FormatErrorf("invalid POINTERS NATOM/NTYPES %d/%d", natom, ntypes)
	}

	in := &inputs{file: file, pointers: pointers, ntypes: ntypes}

	var err error
	if in.atomTypeIndices, err = file.IntSection("ATOM_TYPE_INDEX", natom); err != nil {
		return nil, err
	}
	if in.atomNames, err = file.StringSection("ATOM_NAME", natom); err != nil {
		return nil, err
	}
	if in.amberAtomTypes, err = file.StringSection("AMBER_ATOM_TYPE", natom); err != nil {
		return nil, err
	}
	if in.masses, err = file.FloatSection("MASS", natom); err != nil {
		return nil, err
	}
	if in.nonbondIndex, err = file.IntSection("NONBONDED_PARM_INDEX", ntypes*ntypes); err != nil {
		return nil, err
	}
	triangular := ntypes * (ntypes + 1) / 2
	if in.acoef, err = file.FloatSection("LENNARD_JONES_ACOEF", triangular); err != nil {
		return nil, err
	}
	if in.bcoef, err = file.FloatSection("LENNARD_JONES_BCOEF", triangular); err != nil {
		return nil, err
	}
	nphb := pointers.NPhb()
	if in.hbondACoef, err = file.FloatSection("HBOND_ACOEF", nphb); err != nil {
		return nil, err
	}
	if in.hbondBCoef, err = file.FloatSection("HBOND_BCOEF", nphb); err != nil {
		return nil, err
	}
	numbnd := pointers.NumBnd()
	if in.bondForce, err = file.FloatSection("BOND_FORCE_CONSTANT", numbnd); err != nil {
		return nil, err
	}
	if in.bondEquil, err = file.FloatSection("BOND_EQUIL_VALUE", numbnd); err != nil {
		return nil, err
	}
	numang := pointers.NumAng()
	if in.angleForce, err = file.FloatSection("ANGLE_FORCE_CONSTANT", numang); err != nil {
		return nil, err
	}
	if in.angleEquil, err = file.FloatSection("ANGLE_EQUIL_VALUE", numang); err != nil {
		return nil, err
	}
	nptra := pointers.NPtra()
	if in.dihedralForce, err = file.FloatSection("DIHEDRAL_FORCE_CONSTANT", nptra); err != nil {
		return nil, err
	}
	if in.dihedralPeriodicity, err = file.FloatSection("DIHEDRAL_PERIODICITY", nptra); err != nil {
		return nil, err
	}
	if in.dihedralPhase, err = file.FloatSection("DIHEDRAL_PHASE", nptra); err != nil {
		return nil, err
	}
	if in.sceeScale, err = file.OptionalFloatSection("SCEE_SCALE_FACTOR", nptra); err != nil {
		return nil, err
	}
	if in.scnbScale, err = file.OptionalFloatSection("SCNB_SCALE_FACTOR", nptra); err != nil {
		return nil, err
	}

	if in.bonds, err = records.Bonds(file, pointers); err != nil {
		return nil, err
	}
	if in.angles, err = records.Angles(file, pointers); err != nil {
		return nil, err
	}
	if in.dihedrals, err = records.Dihedrals(file, pointers); err != nil {
		return nil, err
	}

	in.typeNames = buildTypeNames(in.atomTypeIndices, in.amberAtomTypes, ntypes)
	return in, nil
}

// buildTypeNames joins the distinct AMBER atom type names observed for
// each type index, sorted, comma separated. Indices 1..ntypes always
// have an entry, possibly empty.
func buildTypeNames(typeIndices []int, amberTypes []string, ntypes int) map[int]string {
	byIndex := make(map[int]map[string]bool)
	for i, t := range typeIndices {
		if i >= len(amberTypes) || amberTypes[i] == "" {
			continue
		}
		set := byIndex[t]
		if set == nil {
			set = make(map[string]bool)
			byIndex[t] = set
		}
		set[amberTypes[i]] = true
	}
	names := make(map[int]string, ntypes)
	for t, set := range byIndex {
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		sort.Strings(values)
		names[t] = strings.Join(values, ", ")
	}
	for t := 1; t <= ntypes; t++ {
		if _, ok := names[t]; !ok {
			names[t] = ""
		}
	}
	return names
}

// typeAt resolves the type index of a 1-based atom serial, or 0 when
// the serial is out of range or the type index is non-positive.
func (in *inputs) typeAt(serial int) int {
	idx := serial - 1
	if idx < 0 || idx >= len(in.atomTypeIndices) {
		return 0
	}
	t := in.atomTypeIndices[idx]
	if t <= 0 {
		return 0
	}
	return t
}

// labelAt resolves a per-atom label (name or type string) for a
// 1-based serial, or "" when out of range.
func labelAt(values []string, serial int) string {
	idx := serial - 1
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return values[idx]
}
