package parm_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/topview/pkg/parm"
)

const miniParm = `%VERSION  VERSION_STAMP = V0001.000  DATE = 08/20/26
%FLAG TITLE
%FORMAT(20a4)
TST
%FLAG POINTERS
%FORMAT(10I8)
       4       2       1       2       1       1       1       1       0       0
       0       2       2       1       1       2       1       2       2       0
       0       0       0       0       0       0       0       0       0       0
       0
%FLAG ATOM_NAME
%FORMAT(20a4)
C1  N1  H1  O1
%FLAG CHARGE
%FORMAT(5E16.8)
  9.10000000E+00 -9.10000000E+00  4.55000000E+00 -4.55000000E+00
`

func TestParseSectionsInFileOrder(t *testing.T) {
	t.Parallel()

	file := parm.Parse(miniParm)

	want := []string{"TITLE", "POINTERS", "ATOM_NAME", "CHARGE"}
	if len(file.Order) != len(want) {
		t.Fatalf("expected %d sections, got %d (%v)", len(want), len(file.Order), file.Order)
	}
	for i, name := range want {
		if file.Order[i] != name {
			t.Errorf("section %d: expected %s, got %s", i, name, file.Order[i])
		}
	}
}

func TestParseTokenSpans(t *testing.T) {
	t.Parallel()

	file := parm.Parse(miniParm)

	section := file.Section("ATOM_NAME")
	if section == nil {
		t.Fatal("ATOM_NAME section missing")
	}
	if len(section.Tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(section.Tokens))
	}

	second := section.Tokens[1]
	if second.Value != "N1  " {
		t.Errorf("expected token value %q, got %q", "N1  ", second.Value)
	}
	if second.Line != section.FlagLine+2 {
		t.Errorf("expected token on line %d, got %d", section.FlagLine+2, second.Line)
	}
	if second.Start != 4 || second.End != 8 {
		t.Errorf("expected span [4,8), got [%d,%d)", second.Start, second.End)
	}

	// The trailing token is clamped to the line length.
	last := section.Tokens[3]
	if last.Value != "O1" || last.End != 14 {
		t.Errorf("expected clamped token %q ending at 14, got %q ending at %d", "O1", last.Value, last.End)
	}

	line := file.LineContent(second.Line)
	if got := line[second.Start:second.End]; got != second.Value {
		t.Errorf("token does not round-trip through the line table: %q != %q", got, second.Value)
	}
}

func TestParseSkipsSectionsOffAllowList(t *testing.T) {
	t.Parallel()

	file := parm.Parse(miniParm)

	title := file.Section("TITLE")
	if title == nil {
		t.Fatal("TITLE section missing")
	}
	if len(title.Tokens) != 0 {
		t.Errorf("expected no tokens for TITLE, got %d", len(title.Tokens))
	}
	if file.HasTokens("TITLE") {
		t.Error("HasTokens should be false for TITLE")
	}
	if !file.HasTokens("POINTERS") {
		t.Error("HasTokens should be true for POINTERS")
	}
}

func TestParseSectionWithoutFormatLine(t *testing.T) {
	t.Parallel()

	file := parm.Parse("%FLAG ATOM_NAME\nC1  N1\n")

	section := file.Section("ATOM_NAME")
	if section == nil {
		t.Fatal("ATOM_NAME section missing")
	}
	if len(section.Tokens) != 0 {
		t.Errorf("expected no tokens without a %%FORMAT line, got %d", len(section.Tokens))
	}
}

func TestParseBlankFieldsAreSkipped(t *testing.T) {
	t.Parallel()

	file := parm.Parse("%FLAG RESIDUE_LABEL\n%FORMAT(20a4)\nALA     GLY\n")

	section := file.Section("RESIDUE_LABEL")
	if section == nil {
		t.Fatal("RESIDUE_LABEL section missing")
	}
	if len(section.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(section.Tokens))
	}
	if section.Tokens[1].Start != 8 {
		t.Errorf("expected second token at offset 8, got %d", section.Tokens[1].Start)
	}
}

func TestParseRepeatedFlagLastWins(t *testing.T) {
	t.Parallel()

	text := "%FLAG RESIDUE_LABEL\n%FORMAT(20a4)\nALA\n" +
		"%FLAG RESIDUE_LABEL\n%FORMAT(20a4)\nGLY\n"
	file := parm.Parse(text)

	if len(file.Order) != 1 {
		t.Fatalf("expected 1 section, got %d", len(file.Order))
	}
	section := file.Section("RESIDUE_LABEL")
	if len(section.Tokens) != 1 || strings.TrimSpace(section.Tokens[0].Value) != "GLY" {
		t.Errorf("expected last section to win, got tokens %v", section.Tokens)
	}
}

func TestParseInvalidUTF8IsReplaced(t *testing.T) {
	t.Parallel()

	file := parm.Parse("%FLAG TITLE\n%FORMAT(20a4)\n\xff\xfe\n")

	if !strings.Contains(file.Text, "�") {
		t.Error("expected invalid bytes to be replaced")
	}
}

func TestSectionLineRanges(t *testing.T) {
	t.Parallel()

	file := parm.Parse(miniParm)

	pointers := file.Section("POINTERS")
	if pointers.FlagLine != 4 {
		t.Errorf("expected POINTERS flag line 4, got %d", pointers.FlagLine)
	}
	if pointers.EndLine != 9 {
		t.Errorf("expected POINTERS end line 9, got %d", pointers.EndLine)
	}

	charge := file.Section("CHARGE")
	if charge.EndLine != len(file.Lines)-1 {
		t.Errorf("expected final section to end at last line %d, got %d", len(file.Lines)-1, charge.EndLine)
	}
}
