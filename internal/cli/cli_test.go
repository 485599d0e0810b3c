package cli_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/topview/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "topview" {
		t.Errorf("expected Use to be 'topview', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{
		"sections", "tables", "highlight", "select", "atom", "pdb", "version",
	}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"debug", "config", "color", "format"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestSubcommandFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	tests := []struct {
		command string
		flags   []string
	}{
		{"tables", []string{"table"}},
		{"highlight", []string{"serials", "mode"}},
		{"select", []string{"table", "row", "cursor", "spans"}},
		{"pdb", []string{"output"}},
	}

	for _, tt := range tests {
		subCmd, _, err := cmd.Find([]string{tt.command})
		if err != nil {
			t.Errorf("%s command not found: %v", tt.command, err)
			continue
		}
		for _, flagName := range tt.flags {
			if subCmd.Flags().Lookup(flagName) == nil {
				t.Errorf("expected flag %q to exist on %s command", flagName, tt.command)
			}
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-08-20",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	// Version output goes through charmbracelet/log straight to stdout,
	// so we only verify the command runs cleanly.
}

func TestSectionsCommandRequiresTopologyArg(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	sectionsCmd, _, err := cmd.Find([]string{"sections"})
	if err != nil {
		t.Fatalf("sections command not found: %v", err)
	}

	if err := sectionsCmd.Args(sectionsCmd, []string{}); err == nil {
		t.Error("sections command should reject zero args")
	}
	if err := sectionsCmd.Args(sectionsCmd, []string{"a.parm7", "b.parm7"}); err == nil {
		t.Error("sections command should reject two args")
	}
	if err := sectionsCmd.Args(sectionsCmd, []string{"a.parm7"}); err != nil {
		t.Errorf("sections command should accept one arg, got error: %v", err)
	}
}
