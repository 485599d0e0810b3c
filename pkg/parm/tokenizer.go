package parm

import (
	"regexp"
	"strings"
)

// formatRe captures the per-line token contract declared by a %FORMAT
// line: count, type letter, width, and optional decimal places.
var formatRe = regexp.MustCompile(`%FORMAT\((\d+)([a-zA-Z])(\d+)(?:\.(\d+))?\)`)

// tokenSections is the allow-list of flags whose body lines are sliced
// into tokens. Everything else keeps only its name and line range.
var tokenSections = map[string]bool{
	"POINTERS":                   true,
	"ATOM_NAME":                  true,
	"CHARGE":                     true,
	"ATOMIC_NUMBER":              true,
	"MASS":                       true,
	"ATOM_TYPE_INDEX":            true,
	"AMBER_ATOM_TYPE":            true,
	"RESIDUE_LABEL":              true,
	"RESIDUE_POINTER":            true,
	"BONDS_INC_HYDROGEN":         true,
	"BONDS_WITHOUT_HYDROGEN":     true,
	"BOND_FORCE_CONSTANT":        true,
	"BOND_EQUIL_VALUE":           true,
	"ANGLES_INC_HYDROGEN":        true,
	"ANGLES_WITHOUT_HYDROGEN":    true,
	"ANGLE_FORCE_CONSTANT":       true,
	"ANGLE_EQUIL_VALUE":          true,
	"DIHEDRALS_INC_HYDROGEN":     true,
	"DIHEDRALS_WITHOUT_HYDROGEN": true,
	"DIHEDRAL_FORCE_CONSTANT":    true,
	"DIHEDRAL_PERIODICITY":       true,
	"DIHEDRAL_PHASE":             true,
	"SCEE_SCALE_FACTOR":          true,
	"SCNB_SCALE_FACTOR":          true,
	"NONBONDED_PARM_INDEX":       true,
	"LENNARD_JONES_ACOEF":        true,
	"LENNARD_JONES_BCOEF":        true,
	"HBOND_ACOEF":                true,
	"HBOND_BCOEF":                true,
	"HBCUT":                      true,
}

// Parse tokenizes raw parm7 text. It never fails: invalid UTF-8 is
// replaced, unknown flags are kept without tokens, and a section with
// no %FORMAT line collects zero tokens.
func Parse(text string) *File {
	text = strings.ToValidUTF8(text, "�")
	lines := splitLines(text)

	file := &File{
		Text:     text,
		Lines:    lines,
		Sections: make(map[string]*Section),
	}

	var current *Section
	collect := false

	finalize := func(endLine int) {
		if current == nil {
			return
		}
		current.EndLine = endLine
		if _, exists := file.Sections[current.Name]; !exists {
			file.Order = append(file.Order, current.Name)
		}
		file.Sections[current.Name] = current
	}

	for idx, line := range lines {
		if strings.HasPrefix(line, "%FLAG") {
			finalize(idx - 1)
			current = nil
			collect = false
			fields := strings.Fields(line)
			if len(fields) > 1 {
				current = &Section{Name: fields[1], FlagLine: idx}
				collect = tokenSections[current.Name]
			}
			continue
		}
		if strings.HasPrefix(line, "%FORMAT") {
			if current != nil {
				if m := formatRe.FindStringSubmatch(line); m != nil {
					current.Count = atoiLoose(m[1])
					current.Width = atoiLoose(m[3])
				}
			}
			continue
		}
		if !collect || current == nil || current.Count == 0 || current.Width == 0 {
			continue
		}
		for slot := 0; slot < current.Count; slot++ {
			start := slot * current.Width
			if start >= len(line) {
				break
			}
			end := min(start+current.Width, len(line))
			raw := line[start:end]
			if strings.TrimSpace(raw) == "" {
				continue
			}
			current.Tokens = append(current.Tokens, Token{
				Value: raw,
				Line:  idx,
				Start: start,
				End:   end,
			})
		}
	}
	finalize(len(lines) - 1)

	return file
}

// splitLines mirrors the line semantics of the tokenizer: newline
// separated, trailing carriage returns stripped, no terminator kept.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
