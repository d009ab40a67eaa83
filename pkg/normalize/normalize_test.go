package normalize

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestRun_NormalizesAllCategories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "color.json", `{"color": {"primary-01": {"500": {"value": "#f59100"}}}}`)
	writeFile(t, dir, "border.json", `{"border": {"width": {"s": {"value": "1px"}}, "radius": {"m": {"value": 4}}}}`)
	writeFile(t, dir, "screen.json", `{"screen": {"s": {"value": "768px"}}}`)

	res := Run(dir, nil, discardLogger())
	assert.Empty(t, res.Warnings)

	byCat := TokensByCategory(res.Tokens)
	assert.Len(t, byCat[token.CategoryColor], 1)
	assert.Len(t, byCat[token.CategoryBorder], 1)
	assert.Len(t, byCat[token.CategoryRadius], 1)
	assert.Len(t, byCat[token.CategoryScreen], 1)
	// Synthetic spacing series is always present.
	assert.NotEmpty(t, byCat[token.CategorySpacing])
}

func TestRun_MalformedFileIsIsolated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "color.json", `{"color": {"grey": {"000": {"value": "#ffffff"}}}}`)
	writeFile(t, dir, "border.json", `{"border": {"width": {"s": {"value": "1px"}}}}`)
	writeFile(t, dir, "typography.json", `{not json`)

	res := Run(dir, nil, discardLogger())

	// The malformed file contributes a warning, not a failure.
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].SourceFile, "typography.json")

	// Both valid files still contributed their tokens.
	byCat := TokensByCategory(res.Tokens)
	assert.Len(t, byCat[token.CategoryColor], 1)
	assert.Len(t, byCat[token.CategoryBorder], 1)
	assert.Empty(t, byCat[token.CategoryTypography])
}

func TestRun_MissingDirectoryStillEmitsSpacing(t *testing.T) {
	res := Run(filepath.Join(t.TempDir(), "does-not-exist"), nil, discardLogger())

	byCat := TokensByCategory(res.Tokens)
	assert.NotEmpty(t, byCat[token.CategorySpacing])
}

func TestRun_UnrecognizedFilesSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "motion.json", `{"motion": {"fast": {"value": "200ms"}}}`)

	res := Run(dir, nil, discardLogger())
	assert.Empty(t, res.Warnings)
	byCat := TokensByCategory(res.Tokens)
	// Only the synthetic spacing series.
	assert.Len(t, res.Tokens, len(byCat[token.CategorySpacing]))
}

func TestRun_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "deprecated"), 0755))
	writeFile(t, dir, "color.json", `{"color": {"grey": {"000": {"value": "#ffffff"}}}}`)
	writeFile(t, filepath.Join(dir, "deprecated"), "screen.json", `{"screen": {"s": {"value": "768px"}}}`)

	res := Run(dir, []string{"deprecated/**"}, discardLogger())

	byCat := TokensByCategory(res.Tokens)
	assert.Len(t, byCat[token.CategoryColor], 1)
	assert.Empty(t, byCat[token.CategoryScreen])
}

func TestDiscoverSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "color.json", `{}`)
	writeFile(t, dir, "readme.md", `# notes`)

	files, err := DiscoverSources(dir, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "color.json")
}
