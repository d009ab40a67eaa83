package normalize

import (
	"regexp"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// trailingSeriesRe matches a numeric series suffix on a color family name,
// e.g. the "-01" in "primary-01".
var trailingSeriesRe = regexp.MustCompile(`-[0-9]+$`)

// NormalizeColors flattens a color property tree. The subcategory is the
// first path segment after the category with any trailing numeric suffix
// stripped, so primary-01 and primary-02 group under "primary". This is a
// fixed rule downstream consumers depend on, not a general heuristic.
func NormalizeColors(tree map[string]any, sourceFile string) Result {
	toks := flattenCategory(tree, token.CategoryColor, sourceFile)
	for i := range toks {
		toks[i].Subcategory = colorSubcategory(toks[i].Path)
	}
	return Result{Tokens: toks}
}

func colorSubcategory(path string) string {
	family := pathSegment(path, 1)
	return trailingSeriesRe.ReplaceAllString(family, "")
}
