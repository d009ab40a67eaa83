package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultDBPath    = "mozaic.db"
	defaultSourceDir = "mozaic"
)

// ProjectConfig holds the contents of .mozaic/config.yaml.
type ProjectConfig struct {
	Version   string   `yaml:"version"`
	DBPath    string   `yaml:"db_path"`
	SourceDir string   `yaml:"source_dir"`
	Excludes  []string `yaml:"excludes"`
	CallLog   string   `yaml:"call_log"`
	Log       struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// loadProjectConfig reads .mozaic/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".mozaic/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveDBPath returns the database path to use, applying the fallback
// chain:
//  1. Explicit --db flag value (non-empty override)
//  2. db_path from .mozaic/config.yaml
//  3. Default: mozaic.db
func resolveDBPath(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	return defaultDBPath
}

// resolveSourceDir applies the same chain for the build source checkout.
func resolveSourceDir(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.SourceDir != "" {
		return cfg.SourceDir
	}
	return defaultSourceDir
}

func resolveCallLog(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil {
		return cfg.CallLog
	}
	return ""
}
