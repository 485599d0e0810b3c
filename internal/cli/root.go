// Package cli provides the Cobra command structure for topview.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root topview command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var format string

	rootCmd := &cobra.Command{
		Use:   "topview",
		Short: "Inspect AMBER parm7 topology files",
		Long: `topview parses AMBER parm7 (PRMTOP) topology files and answers
questions about them: the section layout, per-type summary tables for
bonded and nonbonded parameters, the exact file spans behind any atom
selection, and reverse lookups from summary rows to concrete atoms.

Input files may be gzip-compressed. All commands accept --format json
for machine-readable output.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&format, "format", "",
		"output format: text, json")

	// Add subcommands.
	rootCmd.AddCommand(newSectionsCommand())
	rootCmd.AddCommand(newTablesCommand())
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newSelectCommand())
	rootCmd.AddCommand(newAtomCommand())
	rootCmd.AddCommand(newPdbCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
