package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/logging"
	"github.com/yaklabco/topview/pkg/fsutil"
	"github.com/yaklabco/topview/pkg/pdb"
	"github.com/yaklabco/topview/pkg/rst7"
)

func newPdbCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pdb <topology> <restart>",
		Short: "Write a PDB file from a topology and restart coordinates",
		Long: `Combine the atom metadata of a topology with the coordinates of an
AMBER restart file and emit PDB ATOM records.

Examples:
  topview pdb system.parm7 system.rst7
  topview pdb system.parm7 system.rst7 --output system.pdb`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPdb(cmd, args, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func runPdb(cmd *cobra.Command, args []string, output string) error {
	env, err := newEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	m, err := loadTopology(ctx, args[0])
	if err != nil {
		return err
	}
	restartText, _, err := fsutil.ReadText(ctx, args[1])
	if err != nil {
		return err
	}
	restart, err := rst7.Parse(restartText)
	if err != nil {
		return err
	}
	atoms, err := m.Atoms()
	if err != nil {
		return err
	}

	text, err := pdb.Write(atoms, restart.Coords)
	if err != nil {
		return err
	}
	if output == "" {
		fmt.Fprint(env.out, text)
		return nil
	}
	if err := fsutil.WriteAtomic(ctx, output, []byte(text), 0); err != nil {
		return err
	}
	logging.Default().Info("pdb written",
		logging.FieldOutput, output,
		logging.FieldAtoms, len(atoms),
	)
	return nil
}
