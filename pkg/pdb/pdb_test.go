package pdb_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/topview/pkg/model"
	"github.com/yaklabco/topview/pkg/parm"
	"github.com/yaklabco/topview/pkg/pdb"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	atoms := []model.AtomMeta{
		{Serial: 1, Name: "C1", Element: "C", Resid: 1, Resname: "ALA"},
		{Serial: 2, Name: "CL-", Element: "Cl", Resid: 2, Resname: "CL"},
	}
	coords := [][3]float64{
		{1.0, 2.0, 3.0},
		{-4.25, 10.5, 0.001},
	}

	out, err := pdb.Write(atoms, coords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 ATOM lines plus END, got %d lines", len(lines))
	}

	want := "ATOM      1   C1 ALA     1       1.000   2.000   3.000  1.00  0.00           C"
	if lines[0] != want {
		t.Errorf("line 0 mismatch:\n got %q\nwant %q", lines[0], want)
	}

	want = "ATOM      2  CL- CL      2      -4.250  10.500   0.001  1.00  0.00          Cl"
	if lines[1] != want {
		t.Errorf("line 1 mismatch:\n got %q\nwant %q", lines[1], want)
	}

	if lines[2] != "END" {
		t.Errorf("expected END terminator, got %q", lines[2])
	}
}

func TestWriteFieldWidths(t *testing.T) {
	t.Parallel()

	atoms := []model.AtomMeta{
		{Serial: 99999, Name: "HD21A", Element: "", Resid: 9999, Resname: "LONGNAME"},
	}
	out, err := pdb.Write(atoms, [][3]float64{{0, 0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := strings.Split(out, "\n")[0]
	if len(line) != 78 {
		t.Errorf("expected 78-column ATOM line, got %d: %q", len(line), line)
	}
	// Long names truncate to their column widths.
	if !strings.Contains(line, "HD21") || strings.Contains(line, "HD21A") {
		t.Errorf("expected truncated atom name, got %q", line)
	}
	if !strings.Contains(line, "LON") || strings.Contains(line, "LONG") {
		t.Errorf("expected truncated residue name, got %q", line)
	}
}

func TestWriteCountMismatch(t *testing.T) {
	t.Parallel()

	atoms := []model.AtomMeta{{Serial: 1, Name: "C1"}}
	_, err := pdb.Write(atoms, nil)
	if !parm.IsCode(err, parm.CodeInvalidInput) {
		t.Errorf("expected invalid_input, got %v", err)
	}
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	out, err := pdb.Write(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "END\n" {
		t.Errorf("expected bare END block, got %q", out)
	}
}
