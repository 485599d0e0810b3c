// Package pdb renders atom records in the fixed-column PDB format.
package pdb

import (
	"fmt"
	"strings"

	"github.com/yaklabco/topview/pkg/model"
	"github.com/yaklabco/topview/pkg/parm"
)

// Write formats one ATOM line per atom using the paired coordinates
// and terminates the block with END. Coordinate count must match the
// atom count.
func Write(atoms []model.AtomMeta, coords [][3]float64) (string, error) {
	if len(coords) != len(atoms) {
		return "", parm.NewError(parm.CodeInvalidInput, fmt.Sprintf(
			"coordinate count %d does not match atom count %d", len(coords), len(atoms)))
	}
	var b strings.Builder
	for i, atom := range atoms {
		xyz := coords[i]
		fmt.Fprintf(&b,
			"ATOM  %5d %s %s %s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			atom.Serial,
			formatAtomName(atom.Name),
			formatResname(atom.Resname),
			" ",
			atom.Resid,
			xyz[0], xyz[1], xyz[2],
			1.00, 0.00,
			formatElement(atom.Element),
		)
	}
	b.WriteString("END\n")
	return b.String(), nil
}

func formatAtomName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > 4 {
		return name[:4]
	}
	return fmt.Sprintf("%4s", name)
}

func formatResname(resname string) string {
	resname = strings.TrimSpace(resname)
	if len(resname) > 3 {
		return resname[:3]
	}
	return fmt.Sprintf("%-3s", resname)
}

func formatElement(element string) string {
	element = strings.TrimSpace(element)
	switch {
	case element == "":
		return "  "
	case len(element) == 1:
		return " " + strings.ToUpper(element)
	default:
		return strings.ToUpper(element[:1]) + strings.ToLower(element[1:2])
	}
}
