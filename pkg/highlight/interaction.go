// Package highlight computes the raw-file spans and decoded physical
// parameters that back an atom selection in a given interaction mode.
package highlight

// Mode selects which relationship the engine resolves for a selection.
type Mode string

// Interaction modes.
const (
	ModeAtom      Mode = "Atom"
	ModeBond      Mode = "Bond"
	ModeAngle     Mode = "Angle"
	ModeDihedral  Mode = "Dihedral"
	ModeImproper  Mode = "Improper"
	ModeOneFour   Mode = "1-4 Nonbonded"
	ModeNonbonded Mode = "Non-bonded"
)

// Modes lists all recognized modes.
var Modes = []Mode{
	ModeAtom, ModeBond, ModeAngle, ModeDihedral,
	ModeImproper, ModeOneFour, ModeNonbonded,
}

// ModeForTable maps a derived-table name to the highlight mode its
// selections use. Unknown tables default to Atom.
func ModeForTable(table string) Mode {
	switch table {
	case "atom_types":
		return ModeAtom
	case "bond_types":
		return ModeBond
	case "angle_types":
		return ModeAngle
	case "dihedral_types":
		return ModeDihedral
	case "one_four_nonbonded":
		return ModeOneFour
	case "nonbonded_pairs":
		return ModeNonbonded
	}
	return ModeAtom
}

// Span is a line/column reference into the original text, deduplicated
// by (line, start, end). Line is 0-based; Start/End are character
// offsets within the line.
type Span struct {
	Line    int    `json:"line"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Section string `json:"section"`
}

// Interaction is the decoded-parameter payload attached to a non-Atom
// highlight result. Each mode carries its own concrete struct.
type Interaction interface {
	InteractionMode() Mode
}

// BondTerm is one matching bond record with its decoded parameters.
// Parameter pointers are nil when the backing section is absent or the
// index is out of range.
type BondTerm struct {
	Serials       []int    `json:"serials"`
	ParamIndex    int      `json:"param_index"`
	TypeIndices   []int    `json:"type_indices,omitempty"`
	ForceConstant *float64 `json:"force_constant"`
	EquilValue    *float64 `json:"equil_value"`
}

// AngleTerm is one matching angle record with its decoded parameters.
type AngleTerm struct {
	Serials       []int    `json:"serials"`
	ParamIndex    int      `json:"param_index"`
	TypeIndices   []int    `json:"type_indices,omitempty"`
	ForceConstant *float64 `json:"force_constant"`
	EquilValue    *float64 `json:"equil_value"`
}

// DihedralTerm is one matching dihedral (or improper) term.
type DihedralTerm struct {
	Serials       []int    `json:"serials"`
	ParamIndex    int      `json:"param_index"`
	ForceConstant *float64 `json:"force_constant"`
	Periodicity   *float64 `json:"periodicity"`
	Phase         *float64 `json:"phase"`
	Scee          *float64 `json:"scee"`
	Scnb          *float64 `json:"scnb"`
}

// OneFourTerm is one matching 1-4 pair with its scaling factors.
type OneFourTerm struct {
	Serials     []int    `json:"serials"`
	ParamIndex  int      `json:"param_index"`
	TypeIndices []int    `json:"type_indices,omitempty"`
	Scee        *float64 `json:"scee"`
	Scnb        *float64 `json:"scnb"`
}

// NonbondedTerm is the nonbonded matrix entry for one atom pair.
type NonbondedTerm struct {
	Serials     []int    `json:"serials"`
	TypeIndices []int    `json:"type_indices"`
	NBIndex     int      `json:"nb_index"`
	ACoef       *float64 `json:"acoef"`
	BCoef       *float64 `json:"bcoef"`
	Rmin        *float64 `json:"rmin"`
	Epsilon     *float64 `json:"epsilon"`
}

// BondInteraction is the payload for Bond mode.
type BondInteraction struct {
	Mode  Mode       `json:"mode"`
	Bonds []BondTerm `json:"bonds"`
}

// AngleInteraction is the payload for Angle mode.
type AngleInteraction struct {
	Mode   Mode        `json:"mode"`
	Angles []AngleTerm `json:"angles"`
}

// DihedralInteraction is the payload for Dihedral and Improper modes.
type DihedralInteraction struct {
	Mode      Mode           `json:"mode"`
	Dihedrals []DihedralTerm `json:"dihedrals"`
}

// OneFourInteraction is the payload for 1-4 Nonbonded mode: the
// matching 1-4 terms plus the nonbonded entry of the first pair.
type OneFourInteraction struct {
	Mode      Mode           `json:"mode"`
	OneFour   []OneFourTerm  `json:"one_four"`
	Nonbonded *NonbondedTerm `json:"nonbonded"`
}

// NonbondedInteraction is the payload for Non-bonded mode.
type NonbondedInteraction struct {
	Mode      Mode           `json:"mode"`
	Nonbonded *NonbondedTerm `json:"nonbonded"`
}

func (i *BondInteraction) InteractionMode() Mode      { return i.Mode }
func (i *AngleInteraction) InteractionMode() Mode     { return i.Mode }
func (i *DihedralInteraction) InteractionMode() Mode  { return i.Mode }
func (i *OneFourInteraction) InteractionMode() Mode   { return i.Mode }
func (i *NonbondedInteraction) InteractionMode() Mode { return i.Mode }
