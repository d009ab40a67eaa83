package normalize

import "github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"

// NormalizeGrid flattens grid tokens. Gutter sizes are expressed in magic
// units in the source and get a computed pixel value. The magic-unit and
// rem reference constants are emitted as tokens of their own so the grid
// slice is self-describing.
func NormalizeGrid(tree map[string]any, sourceFile string) Result {
	inner := unwrap(tree, token.CategoryGrid)

	var res Result

	magic := token.New(token.CategoryGrid, "grid.magic-unit", token.ParseValue(pxString(MagicUnitPx)))
	magic.SourceFile = sourceFile
	res.Tokens = append(res.Tokens, magic)

	ref := token.New(token.CategoryGrid, "grid.base-rem", token.ParseValue(remString(1)))
	ref.ValueComputed = pxString(MagicUnitPx)
	ref.SourceFile = sourceFile
	res.Tokens = append(res.Tokens, ref)

	if gutters, ok := inner["gutter"].(map[string]any); ok {
		wrapped := map[string]any{string(token.CategoryGrid): map[string]any{"gutter": gutters}}
		toks := Flatten(wrapped, token.CategoryGrid, sourceFile)
		for i := range toks {
			toks[i].Subcategory = "gutter"
			if toks[i].ValueNumber != nil && toks[i].ValueUnit == "" {
				toks[i].ValueComputed = pxString(*toks[i].ValueNumber * MagicUnitPx)
			}
		}
		res.Tokens = append(res.Tokens, toks...)
	}

	return res
}
