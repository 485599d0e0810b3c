// Package rst7 reads AMBER restart (rst7/inpcrd) coordinate files:
// a title line, an atom count, then x/y/z triplets in 12-character
// fixed-width columns.
package rst7

import (
	"strconv"
	"strings"

	"github.com/yaklabco/topview/pkg/parm"
)

const fieldWidth = 12

// Restart holds the decoded coordinate set.
type Restart struct {
	Title  string
	NAtoms int
	Coords [][3]float64
	Time   float64
}

// Parse decodes restart text. Velocities and box records trailing the
// coordinate block are ignored.
func Parse(text string) (*Restart, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 2 {
		return nil, parm.FormatErrorf("restart file too short: %d line(s)", len(lines))
	}
	r := &Restart{Title: strings.TrimRight(lines[0], " \r")}

	header := strings.Fields(strings.TrimRight(lines[1], "\r"))
	if len(header) == 0 {
		return nil, parm.FormatErrorf("restart header line is empty")
	}
	natoms, err := strconv.Atoi(header[0])
	if err != nil || natoms <= 0 {
		return nil, parm.FormatErrorf("invalid restart atom count %q", header[0])
	}
	r.NAtoms = natoms
	if len(header) > 1 {
		if t, err := strconv.ParseFloat(header[1], 64); err == nil {
			r.Time = t
		}
	}

	values := make([]float64, 0, natoms*3)
	for _, line := range lines[2:] {
		line = strings.TrimRight(line, "\r")
		for start := 0; start < len(line) && len(values) < natoms*3; start += fieldWidth {
			end := start + fieldWidth
			if end > len(line) {
				end = len(line)
			}
			field := strings.TrimSpace(line[start:end])
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, parm.FormatErrorf("invalid coordinate %q", field)
			}
			values = append(values, v)
		}
		if len(values) >= natoms*3 {
			break
		}
	}
	if len(values) < natoms*3 {
		return nil, parm.FormatErrorf(
			"restart has %d coordinate values, need %d", len(values), natoms*3)
	}

	r.Coords = make([][3]float64, natoms)
	for i := 0; i < natoms; i++ {
		r.Coords[i] = [3]float64{values[i*3], values[i*3+1], values[i*3+2]}
	}
	return r, nil
}
