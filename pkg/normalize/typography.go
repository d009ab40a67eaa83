package normalize

import "github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"

// NormalizeTypography flattens font-size entries and line-height entries
// (the latter nested one level deeper by a named variant). Rem-valued
// magnitudes get a rounded pixel-equivalent in ValueComputed.
func NormalizeTypography(tree map[string]any, sourceFile string) Result {
	inner := unwrap(tree, token.CategoryTypography)

	var res Result
	for _, sub := range []string{"font-size", "line-height"} {
		subtree, ok := inner[sub].(map[string]any)
		if !ok {
			continue
		}
		wrapped := map[string]any{
			string(token.CategoryTypography): map[string]any{sub: subtree},
		}
		toks := Flatten(wrapped, token.CategoryTypography, sourceFile)
		for i := range toks {
			toks[i].Subcategory = sub
			applyRemComputed(&toks[i])
		}
		res.Tokens = append(res.Tokens, toks...)
	}
	return res
}

// applyRemComputed sets the rounded pixel equivalent for rem-valued tokens.
func applyRemComputed(tok *token.Token) {
	if tok.ValueUnit == "rem" && tok.ValueNumber != nil {
		tok.ValueComputed = pxString(remToPx(*tok.ValueNumber))
	}
}
