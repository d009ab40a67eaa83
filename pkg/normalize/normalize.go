package normalize

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// categoryNormalizer turns a decoded property tree into tokens.
type categoryNormalizer func(tree map[string]any, sourceFile string) Result

// normalizersByFile dispatches a property file to its normalizer based on
// the file's base name. Spacing is absent on purpose: it is synthesized, not
// parsed.
var normalizersByFile = map[string]categoryNormalizer{
	"color":      NormalizeColors,
	"typography": NormalizeTypography,
	"shadow":     NormalizeShadows,
	"border":     NormalizeBorders,
	"screen":     NormalizeScreens,
	"grid":       NormalizeGrid,
}

// DiscoverSources walks root for .json property files, applying doublestar
// exclude patterns against slash-separated paths relative to root.
func DiscoverSources(root string, excludes []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source root: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range excludes {
			matched, _ := doublestar.PathMatch(pattern, relPath)
			if matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Run normalizes every property file under sourceDir and appends the
// synthetic spacing series. A missing directory or a malformed file degrades
// to a warning for that unit; the pass itself never fails.
func Run(sourceDir string, excludes []string, log *slog.Logger) Result {
	if log == nil {
		log = slog.Default()
	}

	var res Result

	files, err := DiscoverSources(sourceDir, excludes)
	if err != nil {
		res.warnf(sourceDir, "", "source discovery failed: %v", err)
		log.Warn("source discovery failed", "dir", sourceDir, "error", err)
	}

	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		normalizer, ok := normalizersByFile[base]
		if !ok {
			log.Debug("skipping unrecognized property file", "file", file)
			continue
		}

		fileRes := normalizeFile(file, normalizer)
		res.merge(fileRes)
	}

	res.merge(NormalizeSpacing())

	for _, w := range res.Warnings {
		log.Warn("normalization warning", "file", w.SourceFile, "category", string(w.Category), "message", w.Message)
	}
	log.Info("normalization complete", "tokens", len(res.Tokens), "warnings", len(res.Warnings), "files", len(files))

	return res
}

// normalizeFile reads and normalizes one property file. Failures are
// reported as a warning with an empty token list so sibling files keep
// contributing.
func normalizeFile(path string, normalizer categoryNormalizer) Result {
	var res Result

	data, err := os.ReadFile(path)
	if err != nil {
		res.warnf(path, "", "unreadable source file: %v", err)
		return res
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.warnf(path, "", "malformed source file: %v", err)
		return res
	}

	return normalizer(tree, filepath.Base(path))
}

// TokensByCategory partitions tokens into per-category slices, preserving
// order within each category.
func TokensByCategory(toks []token.Token) map[token.Category][]token.Token {
	out := make(map[token.Category][]token.Token)
	for _, t := range toks {
		out[t.Category] = append(out[t.Category], t)
	}
	return out
}
