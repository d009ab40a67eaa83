package normalize

import (
	"strings"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// screenFallbackSubcategory groups breakpoints whose names carry no hyphen.
const screenFallbackSubcategory = "breakpoint"

// NormalizeScreens flattens breakpoint tokens. The subcategory is the first
// hyphen-delimited segment of the breakpoint name when a hyphen is present,
// else the fixed fallback. Another ad hoc rule preserved as-is.
func NormalizeScreens(tree map[string]any, sourceFile string) Result {
	toks := flattenCategory(tree, token.CategoryScreen, sourceFile)
	for i := range toks {
		toks[i].Subcategory = screenSubcategory(pathSegment(toks[i].Path, 1))
	}
	return Result{Tokens: toks}
}

func screenSubcategory(name string) string {
	if idx := strings.Index(name, "-"); idx > 0 {
		return name[:idx]
	}
	return screenFallbackSubcategory
}
