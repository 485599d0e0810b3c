package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/ui/pretty"
)

func newSelectCommand() *cobra.Command {
	var tableName string
	var row int
	var cursor int
	var showSpans bool

	cmd := &cobra.Command{
		Use:   "select <topology>",
		Short: "Map a summary table row to concrete atoms",
		Long: `Resolve one row of a summary table back to the atom serials it was
built from. The cursor cycles through the matches for the row.

Examples:
  topview select system.parm7 --table bond_types --row 0
  topview select system.parm7 --table nonbonded_pairs --row 2 --cursor 5
  topview select system.parm7 --table angle_types --row 1 --spans`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, args, tableName, row, cursor, showSpans)
		},
	}
	cmd.Flags().StringVar(&tableName, "table", "", "summary table name")
	cmd.Flags().IntVar(&row, "row", 0, "row index in the table")
	cmd.Flags().IntVar(&cursor, "cursor", 0, "cursor for cycling through matches")
	cmd.Flags().BoolVar(&showSpans, "spans", false, "also show the file spans of the selection")
	return cmd
}

func runSelect(cmd *cobra.Command, args []string, tableName string, row, cursor int, showSpans bool) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	m, err := loadTopology(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	sel, err := m.Select(tableName, row, cursor)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"ok":      true,
		"mode":    sel.Mode,
		"serials": sel.Serials,
		"index":   sel.Index,
		"total":   sel.Total,
	}
	if !showSpans {
		return env.printJSON(payload)
	}

	spans, interaction, err := m.Highlight(sel.Serials, sel.Mode)
	if err != nil {
		return err
	}
	if env.jsonOutput() {
		payload["highlights"] = spans
		payload["interaction"] = interaction
		return env.printJSON(payload)
	}
	if err := env.printJSON(payload); err != nil {
		return err
	}
	lines, err := m.Lines()
	if err != nil {
		return err
	}
	pretty.FormatSpans(env.out, env.styles, lines, spans)
	return nil
}
