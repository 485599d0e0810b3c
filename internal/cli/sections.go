package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/ui/pretty"
)

func newSectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <topology>",
		Short: "List the %FLAG sections of a topology file",
		Long: `List every %FLAG section in file order with its line range,
a short description, and a deprecation marker where applicable.

Examples:
  topview sections system.parm7
  topview sections system.parm7.gz --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSections,
	}
	return cmd
}

func runSections(cmd *cobra.Command, args []string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	m, err := loadTopology(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	sections, err := m.Sections()
	if err != nil {
		return err
	}
	if env.jsonOutput() {
		return env.printJSON(map[string]any{"ok": true, "sections": sections})
	}
	pretty.FormatSections(env.out, env.styles, sections)
	return nil
}
