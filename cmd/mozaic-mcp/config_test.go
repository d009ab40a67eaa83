package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestResolveDBPath_FallbackChain(t *testing.T) {
	cfg := &ProjectConfig{DBPath: "dist/mozaic.db"}

	assert.Equal(t, "custom.db", resolveDBPath("custom.db", cfg))
	assert.Equal(t, "dist/mozaic.db", resolveDBPath("", cfg))
	assert.Equal(t, defaultDBPath, resolveDBPath("", nil))
	assert.Equal(t, defaultDBPath, resolveDBPath("", &ProjectConfig{}))
}

func TestResolveSourceDir_FallbackChain(t *testing.T) {
	cfg := &ProjectConfig{SourceDir: "vendor/mozaic"}

	assert.Equal(t, "other", resolveSourceDir("other", cfg))
	assert.Equal(t, "vendor/mozaic", resolveSourceDir("", cfg))
	assert.Equal(t, defaultSourceDir, resolveSourceDir("", nil))
}

func TestResolveCallLog(t *testing.T) {
	cfg := &ProjectConfig{CallLog: "logs/calls.jsonl"}

	assert.Equal(t, "override.jsonl", resolveCallLog("override.jsonl", cfg))
	assert.Equal(t, "logs/calls.jsonl", resolveCallLog("", cfg))
	assert.Equal(t, "", resolveCallLog("", nil))
}

func TestProjectConfig_Unmarshal(t *testing.T) {
	raw := `
version: "1.0"
db_path: dist/mozaic.db
source_dir: vendor/mozaic
excludes:
  - "**/draft/**"
call_log: logs/calls.jsonl
log:
  level: debug
  format: json
`
	var cfg ProjectConfig
	assert.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, "dist/mozaic.db", cfg.DBPath)
	assert.Equal(t, "vendor/mozaic", cfg.SourceDir)
	assert.Equal(t, []string{"**/draft/**"}, cfg.Excludes)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}
