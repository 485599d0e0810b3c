package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/ui/pretty"
	"github.com/yaklabco/topview/pkg/parm"
)

func newAtomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atom <topology> <serial>",
		Short: "Show metadata and file spans for one atom",
		Long: `Print the decoded metadata of a single atom (name, element, charge,
mass, type, residue, Lennard-Jones parameters) plus the file spans that
define it.

Examples:
  topview atom system.parm7 1
  topview atom system.parm7 42 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: runAtom,
	}
	return cmd
}

func runAtom(cmd *cobra.Command, args []string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	serial, err := strconv.Atoi(args[1])
	if err != nil {
		return parm.Errorf(parm.CodeInvalidInput, "serial must be an integer")
	}
	m, err := loadTopology(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	atom, spans, err := m.Atom(serial)
	if err != nil {
		return err
	}

	if env.jsonOutput() {
		return env.printJSON(map[string]any{
			"ok":         true,
			"atom":       atom,
			"highlights": spans,
		})
	}
	if err := env.printJSON(atom); err != nil {
		return err
	}
	lines, err := m.Lines()
	if err != nil {
		return err
	}
	pretty.FormatSpans(env.out, env.styles, lines, spans)
	return nil
}
