package build

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
)

// CollectDocs gathers documentation pages from root/docs. The page title is
// the first level-one heading, falling back to the file name; the category
// is the first path segment under docs/.
func CollectDocs(root string) ([]store.DocRecord, []string) {
	docsRoot := filepath.Join(root, "docs")
	if _, err := os.Stat(docsRoot); err != nil {
		return nil, nil
	}

	var (
		docs  []store.DocRecord
		warns []string
	)

	_ = filepath.WalkDir(docsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(path), ".md") {
			return nil
		}

		rel, err := filepath.Rel(docsRoot, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		body, err := os.ReadFile(path)
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: unreadable doc page: %v", rel, err))
			return nil
		}

		docs = append(docs, store.DocRecord{
			Title:    docTitle(string(body), rel),
			Path:     rel,
			Category: docCategory(rel),
			Body:     string(body),
		})
		return nil
	})

	return docs, warns
}

// docTitle extracts the first "# " heading, or derives a title from the
// file name.
func docTitle(body, rel string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	return strings.ReplaceAll(base, "-", " ")
}

// docCategory is the first path segment under docs/, empty for top-level
// pages.
func docCategory(rel string) string {
	if idx := strings.Index(rel, "/"); idx > 0 {
		return rel[:idx]
	}
	return ""
}
