package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/topview/internal/ui/pretty"
	"github.com/yaklabco/topview/pkg/highlight"
	"github.com/yaklabco/topview/pkg/tables"
)

func TestFormatCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil renders empty", nil, ""},
		{"string", "CT", "CT"},
		{"int", 42, "42"},
		{"float", 1.09, "1.09"},
		{"float precision", 2.0944, "2.0944"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pretty.FormatCell(tt.in))
		})
	}
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	table := &tables.Table{
		Columns: []string{"type_a", "force_constant"},
		Rows: [][]any{
			{1, 300.0},
			{2, nil},
		},
	}
	var buf bytes.Buffer
	pretty.FormatTable(&buf, pretty.NewStyles(false), "bond_types", table)

	out := buf.String()
	assert.Contains(t, out, "bond_types")
	// Headers pass through the TableHeader style.
	assert.Contains(t, out, "type_a")
	assert.Contains(t, out, "force_constant")
	assert.Contains(t, out, "300")
}

func TestFormatTableEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pretty.FormatTable(&buf, pretty.NewStyles(false), "improper_types", &tables.Table{Columns: []string{"ID"}})

	assert.Contains(t, buf.String(), "(empty)")
}

func TestFormatSpans(t *testing.T) {
	t.Parallel()

	lines := []string{
		"%FLAG ATOM_NAME",
		"C1  N1  H1  O1",
	}
	spans := []highlight.Span{
		{Line: 1, Start: 4, End: 8, Section: "ATOM_NAME"},
		{Line: 1, Start: 0, End: 4, Section: "ATOM_NAME"},
	}
	var buf bytes.Buffer
	pretty.FormatSpans(&buf, pretty.NewStyles(false), lines, spans)

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n"), "spans on one line render once")
	assert.Contains(t, out, "     2 |")
	assert.Contains(t, out, "C1  N1  H1  O1")
	assert.Contains(t, out, "ATOM_NAME")
}

func TestFormatSpansSkipsOutOfRangeLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	spans := []highlight.Span{{Line: 7, Start: 0, End: 2, Section: "CHARGE"}}
	pretty.FormatSpans(&buf, pretty.NewStyles(false), []string{"only line"}, spans)

	assert.Empty(t, buf.String())
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))
	// A plain buffer is not a terminal.
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
}

func TestTerminalWidthFallsBackForBuffers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, 120, pretty.TerminalWidth(&buf))
}
