package normalize

import "github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"

// NormalizeBorders maps the two subsets of a border source file onto two
// distinct token categories: widths stay under "border", corner radii become
// "radius" tokens. Values may be plain numbers or numeric strings; ParseValue
// covers both coercions.
func NormalizeBorders(tree map[string]any, sourceFile string) Result {
	inner := unwrap(tree, token.CategoryBorder)

	var res Result
	if widths, ok := inner["width"].(map[string]any); ok {
		wrapped := map[string]any{string(token.CategoryBorder): map[string]any{"width": widths}}
		toks := Flatten(wrapped, token.CategoryBorder, sourceFile)
		for i := range toks {
			toks[i].Subcategory = "width"
		}
		res.Tokens = append(res.Tokens, toks...)
	}
	if radii, ok := inner["radius"].(map[string]any); ok {
		wrapped := map[string]any{string(token.CategoryRadius): radii}
		res.Tokens = append(res.Tokens, Flatten(wrapped, token.CategoryRadius, sourceFile)...)
	}
	return res
}
