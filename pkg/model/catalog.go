package model

// SectionInfo describes one %FLAG section for listings: where it sits
// in the file plus reference metadata.
type SectionInfo struct {
	Name        string `json:"name"`
	Line        int    `json:"line"`
	EndLine     int    `json:"end_line"`
	Description string `json:"description"`
	Deprecated  bool   `json:"deprecated"`
}

// deprecatedFlags are sections kept for backward compatibility that
// modern force fields no longer consume.
var deprecatedFlags = map[string]bool{
	"HBCUT":      true,
	"JOIN_ARRAY": true,
	"IROTAT":     true,
	"IPOL":       true,
}

// sectionDescriptions summarizes the common %FLAG sections. Unknown
// flags get an empty description.
var sectionDescriptions = map[string]string{
	"TITLE":                      "Title of the topology file.",
	"POINTERS":                   "Integer control counts sizing every other section.",
	"ATOM_NAME":                  "Atom names, one per atom.",
	"CHARGE":                     "Partial charges scaled by 18.2223 (internal units).",
	"ATOMIC_NUMBER":              "Atomic number of each atom.",
	"MASS":                       "Atomic mass of each atom.",
	"ATOM_TYPE_INDEX":            "1-based Lennard-Jones type index per atom.",
	"NUMBER_EXCLUDED_ATOMS":      "Count of excluded atoms per atom.",
	"NONBONDED_PARM_INDEX":       "NTYPES x NTYPES matrix of nonbonded parameter pointers.",
	"RESIDUE_LABEL":              "Residue names, one per residue.",
	"RESIDUE_POINTER":            "First atom serial of each residue.",
	"BOND_FORCE_CONSTANT":        "Bond force constants (kcal/mol/A^2).",
	"BOND_EQUIL_VALUE":           "Equilibrium bond lengths (A).",
	"ANGLE_FORCE_CONSTANT":       "Angle force constants (kcal/mol/rad^2).",
	"ANGLE_EQUIL_VALUE":          "Equilibrium angles (rad).",
	"DIHEDRAL_FORCE_CONSTANT":    "Dihedral barrier heights (kcal/mol).",
	"DIHEDRAL_PERIODICITY":       "Dihedral periodicities.",
	"DIHEDRAL_PHASE":             "Dihedral phase offsets (rad).",
	"SCEE_SCALE_FACTOR":          "1-4 electrostatic scaling per dihedral type.",
	"SCNB_SCALE_FACTOR":          "1-4 van der Waals scaling per dihedral type.",
	"SOLTY":                      "Reserved; unused solvent type array.",
	"LENNARD_JONES_ACOEF":        "Lennard-Jones A coefficients (r^-12 term).",
	"LENNARD_JONES_BCOEF":        "Lennard-Jones B coefficients (r^-6 term).",
	"BONDS_INC_HYDROGEN":         "Bond records involving hydrogen: atom pointers plus parameter index.",
	"BONDS_WITHOUT_HYDROGEN":     "Bond records not involving hydrogen.",
	"ANGLES_INC_HYDROGEN":        "Angle records involving hydrogen.",
	"ANGLES_WITHOUT_HYDROGEN":    "Angle records not involving hydrogen.",
	"DIHEDRALS_INC_HYDROGEN":     "Dihedral records involving hydrogen.",
	"DIHEDRALS_WITHOUT_HYDROGEN": "Dihedral records not involving hydrogen.",
	"EXCLUDED_ATOMS_LIST":        "Flattened nonbonded exclusion list.",
	"HBOND_ACOEF":                "10-12 hydrogen bond A coefficients.",
	"HBOND_BCOEF":                "10-12 hydrogen bond B coefficients.",
	"HBCUT":                      "Legacy hydrogen bond cutoff values.",
	"AMBER_ATOM_TYPE":            "Force field atom type name per atom.",
	"TREE_CHAIN_CLASSIFICATION":  "Tree structure markers per atom.",
	"JOIN_ARRAY":                 "Legacy tree joining array.",
	"IROTAT":                     "Legacy rotation markers.",
	"IPOL":                       "Polarizability flag.",
	"RADIUS_SET":                 "Name of the intrinsic radius set.",
	"RADII":                      "Intrinsic radii per atom (implicit solvent).",
	"SCREEN":                     "GB screening parameters per atom.",
	"SOLVENT_POINTERS":           "Solvent division pointers (periodic systems).",
	"ATOMS_PER_MOLECULE":         "Atom counts per molecule (periodic systems).",
	"BOX_DIMENSIONS":             "Periodic box angles and lengths.",
	"CAP_INFO":                   "Water cap atom pointer.",
	"CAP_INFO2":                  "Water cap geometry.",
}

func describeSection(name string) string {
	return sectionDescriptions[name]
}
