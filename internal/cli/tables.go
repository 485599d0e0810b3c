package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/ui/pretty"
	"github.com/yaklabco/topview/pkg/tables"
)

func newTablesCommand() *cobra.Command {
	var tableName string

	cmd := &cobra.Command{
		Use:   "tables <topology>",
		Short: "Print the derived parameter summary tables",
		Long: fmt.Sprintf(`Build the per-type summary tables from the topology and print them.

Available tables: %s.

Examples:
  topview tables system.parm7
  topview tables system.parm7 --table bond_types
  topview tables system.parm7 --format json`, strings.Join(tables.Names, ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(cmd, args, tableName)
		},
	}
	cmd.Flags().StringVar(&tableName, "table", "", "print a single table by name")
	return cmd
}

func runTables(cmd *cobra.Command, args []string, tableName string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	m, err := loadTopology(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if tableName != "" {
		table, err := m.Table(tableName)
		if err != nil {
			return err
		}
		if env.jsonOutput() {
			return env.printJSON(map[string]any{"ok": true, "tables": map[string]*tables.Table{tableName: table}})
		}
		pretty.FormatTable(env.out, env.styles, tableName, table)
		return nil
	}

	all, err := m.Tables()
	if err != nil {
		return err
	}
	if env.jsonOutput() {
		return env.printJSON(map[string]any{"ok": true, "tables": all})
	}
	for i, name := range tables.Names {
		if i > 0 {
			fmt.Fprintln(env.out)
		}
		pretty.FormatTable(env.out, env.styles, name, all[name])
	}
	return nil
}
