package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/topview/internal/logging"
	"github.com/yaklabco/topview/internal/ui/pretty"
	"github.com/yaklabco/topview/pkg/config"
	"github.com/yaklabco/topview/pkg/fsutil"
	"github.com/yaklabco/topview/pkg/model"
)

// commandEnv carries the resolved configuration and output helpers
// shared by every subcommand.
type commandEnv struct {
	cfg    *config.Config
	styles *pretty.Styles
	out    io.Writer
}

// newEnv resolves configuration (file, then persistent flags) and
// builds the styled output environment.
func newEnv(cmd *cobra.Command) (*commandEnv, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	cfg, loadedFrom, err := config.Load(workDir, configPath)
	if err != nil {
		return nil, err
	}
	if loadedFrom != "" {
		logging.Default().Debug("config loaded", logging.FieldPath, loadedFrom)
	}

	// Persistent flags override file values when set.
	if flag, _ := cmd.Flags().GetString("format"); flag != "" {
		format, err := config.ParseFormat(flag)
		if err != nil {
			return nil, err
		}
		cfg.Format = format
	}
	if flag, _ := cmd.Flags().GetString("color"); flag != "" {
		cfg.Color = flag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.SetLevel(cfg.LogLevel)

	out := cmd.OutOrStdout()
	return &commandEnv{
		cfg:    cfg,
		styles: pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out)),
		out:    out,
	}, nil
}

func (e *commandEnv) jsonOutput() bool {
	return e.cfg.Format == config.FormatJSON
}

// printJSON writes an indented JSON payload.
func (e *commandEnv) printJSON(payload any) error {
	encoder := json.NewEncoder(e.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// loadTopology reads a (possibly gzip-compressed) topology file and
// loads it into a fresh model.
func loadTopology(ctx context.Context, path string) (*model.Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()

	text, compressed, err := fsutil.ReadText(ctx, path)
	if err != nil {
		return nil, err
	}
	m := model.New()
	result, err := m.Load(ctx, path, text)
	if err != nil {
		return nil, err
	}
	logger.Debug("topology loaded",
		logging.FieldPath, result.Source,
		logging.FieldAtoms, result.NAtoms,
		logging.FieldResidues, result.NResidues,
		logging.FieldSections, result.NSections,
		logging.FieldGzip, compressed,
	)
	return m, nil
}
