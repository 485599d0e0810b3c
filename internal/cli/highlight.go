package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/ui/pretty"
	"github.com/yaklabco/topview/pkg/highlight"
)

func newHighlightCommand() *cobra.Command {
	var serials []int
	var mode string

	cmd := &cobra.Command{
		Use:   "highlight <topology>",
		Short: "Show the file spans behind an atom selection",
		Long: `Resolve the raw-file spans and interaction parameters for a set of
atom serials in a given mode.

Modes: Atom, Bond, Angle, Dihedral, Improper, "1-4 Nonbonded", Non-bonded.

Examples:
  topview highlight system.parm7 --serials 1
  topview highlight system.parm7 --serials 1,2 --mode Bond
  topview highlight system.parm7 --serials 1,2,3,4 --mode Dihedral --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, serials, mode)
		},
	}
	cmd.Flags().IntSliceVar(&serials, "serials", nil, "selected atom serials (comma separated)")
	cmd.Flags().StringVar(&mode, "mode", "", "selection mode (default Atom)")
	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, serials []int, modeFlag string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	mode, err := highlight.ParseMode(modeFlag)
	if err != nil {
		return err
	}
	m, err := loadTopology(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	spans, interaction, err := m.Highlight(serials, mode)
	if err != nil {
		return err
	}

	if env.jsonOutput() {
		return env.printJSON(map[string]any{
			"ok":          true,
			"highlights":  spans,
			"interaction": interaction,
		})
	}
	lines, err := m.Lines()
	if err != nil {
		return err
	}
	pretty.FormatSpans(env.out, env.styles, lines, spans)
	if interaction != nil {
		return env.printJSON(interaction)
	}
	return nil
}
