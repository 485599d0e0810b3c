// Package records reconstructs bonded interaction records (bonds,
// angles, dihedrals) from the integer sections of a tokenized parm7
// file, applying the pointer-to-serial and sign-encoding rules.
package records

import (
	"github.com/yaklabco/topview/pkg/parm"
)

// Bond is one record from a bond section: two 1-based atom serials and
// an unsigned parameter index.
type Bond struct {
	A, B  int
	Param int
}

// Angle is one record from an angle section.
type Angle struct {
	I, J, K int
	Param   int
}

// Dihedral is one record from a dihedral section. Term is the running
// 1-based term index across both dihedral sections; multiple
// periodicity terms of the same quad get distinct Term values.
// ExcludedOneFour is set when the raw third pointer is negative (the
// 1-4 pair was already counted on another term); Improper when the raw
// fourth pointer is negative.
type Dihedral struct {
	I, J, K, L      int
	Param           int
	Term            int
	ExcludedOneFour bool
	Improper        bool
}

// BondSectionNames lists the two bond sections in file order.
var BondSectionNames = [2]string{"BONDS_INC_HYDROGEN", "BONDS_WITHOUT_HYDROGEN"}

// AngleSectionNames lists the two angle sections in file order.
var AngleSectionNames = [2]string{"ANGLES_INC_HYDROGEN", "ANGLES_WITHOUT_HYDROGEN"}

// DihedralSectionNames lists the two dihedral sections in file order.
var DihedralSectionNames = [2]string{"DIHEDRALS_INC_HYDROGEN", "DIHEDRALS_WITHOUT_HYDROGEN"}

// SerialFromPointer converts a raw bonded-section pointer to a 1-based
// atom serial. Pointers are stored as 0-based offsets into the
// external x,y,z coordinate array, hence the division by three.
func SerialFromPointer(v int) int {
	return abs(v)/3 + 1
}

// Bonds extracts all bond records from both bond sections, validating
// each section's token count against the pointer contract (3 values
// per record).
func Bonds(file *parm.File, pointers *parm.PointerSet) ([]Bond, error) {
	var bonds []Bond
	for i, name := range BondSectionNames {
		count := pointers.NBonH()
		if i == 1 {
			count = pointers.MBonA()
		}
		values, err := file.IntSection(name, count*3)
		if err != nil {
			return nil, err
		}
		for idx := 0; idx+2 < len(values); idx += 3 {
			bonds = append(bonds, Bond{
				A:     SerialFromPointer(values[idx]),
				B:     SerialFromPointer(values[idx+1]),
				Param: abs(values[idx+2]),
			})
		}
	}
	return bonds, nil
}

// Angles extracts all angle records from both angle sections (4 values
// per record).
func Angles(file *parm.File, pointers *parm.PointerSet) ([]Angle, error) {
	var angles []Angle
	for i, name := range AngleSectionNames {
		count := pointers.NTheTH()
		if i == 1 {
			count = pointers.MTheta()
		}
		values, err := file.IntSection(name, count*4)
		if err != nil {
			return nil, err
		}
		for idx := 0; idx+3 < len(values); idx += 4 {
			angles = append(angles, Angle{
				I:     SerialFromPointer(values[idx]),
				J:     SerialFromPointer(values[idx+1]),
				K:     SerialFromPointer(values[idx+2]),
				Param: abs(values[idx+3]),
			})
		}
	}
	return angles, nil
}

// Dihedrals extracts all dihedral records from both dihedral sections
// (5 values per record), decoding the sign flags of the third and
// fourth raw pointers.
func Dihedrals(file *parm.File, pointers *parm.PointerSet) ([]Dihedral, error) {
	var dihedrals []Dihedral
	term := 1
	for i, name := range DihedralSectionNames {
		count := pointers.NPhiH()
		if i == 1 {
			count = pointers.MPhiA()
		}
		values, err := file.IntSection(name, count*5)
		if err != nil {
			return nil, err
		}
		for idx := 0; idx+4 < len(values); idx += 5 {
			dihedrals = append(dihedrals, Dihedral{
				I:               SerialFromPointer(values[idx]),
				J:               SerialFromPointer(values[idx+1]),
				K:               SerialFromPointer(values[idx+2]),
				L:               SerialFromPointer(values[idx+3]),
				Param:           abs(values[idx+4]),
				Term:            term,
				ExcludedOneFour: values[idx+2] < 0,
				Improper:        values[idx+3] < 0,
			})
			term++
		}
	}
	return dihedrals, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
