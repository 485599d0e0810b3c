package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// projectConfigFiles are the config file names searched in the working
// directory, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".topview.yml",
	".topview.yaml",
	"topview.yml",
	"topview.yaml",
}

// Load resolves the effective configuration. An explicit path wins;
// otherwise the project config in workDir, then the user config under
// $XDG_CONFIG_HOME/topview/, then defaults. The returned path is the
// file actually loaded, empty when running on defaults.
func Load(workDir, explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := loadFile(explicitPath)
		if err != nil {
			return nil, "", err
		}
		return Default().Merge(cfg), explicitPath, nil
	}

	for _, name := range projectConfigFiles {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			cfg, err := loadFile(path)
			if err != nil {
				return nil, "", err
			}
			return Default().Merge(cfg), path, nil
		}
	}

	if userPath := userConfigPath(); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			cfg, err := loadFile(userPath)
			if err != nil {
				return nil, "", err
			}
			return Default().Merge(cfg), userPath, nil
		}
	}

	return Default(), "", nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func userConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "topview", "config.yaml")
}
