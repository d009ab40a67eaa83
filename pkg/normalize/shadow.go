package normalize

import (
	"sort"
	"strings"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// shadowProperties are the named sub-values of a composite shadow token.
// Opacity is parsed like the rest but excluded from the joined raw value.
var shadowProperties = []string{"x", "y", "blur", "spread", "opacity"}

// NormalizeShadows builds composite shadow tokens. Each variant's five
// sub-properties are parsed individually, and x, y, blur and spread are
// additionally concatenated into a single space-joined raw value.
func NormalizeShadows(tree map[string]any, sourceFile string) Result {
	inner := unwrap(tree, token.CategoryShadow)

	variants := make([]string, 0, len(inner))
	for name := range inner {
		variants = append(variants, name)
	}
	sort.Strings(variants)

	var res Result
	for _, name := range variants {
		variant, ok := inner[name].(map[string]any)
		if !ok {
			continue
		}

		props := make([]token.Property, 0, len(shadowProperties))
		var joined []string
		for _, pname := range shadowProperties {
			node, ok := variant[pname].(map[string]any)
			if !ok {
				continue
			}
			raw, ok := leaf(node)
			if !ok {
				continue
			}
			v := token.ParseValue(raw)
			props = append(props, token.Property{
				Name:   pname,
				Value:  v.Raw,
				Number: v.Number,
				Unit:   v.Unit,
			})
			if pname != "opacity" {
				joined = append(joined, v.Raw)
			}
		}
		if len(props) == 0 {
			res.warnf(sourceFile, token.CategoryShadow, "shadow variant %q has no recognizable sub-properties", name)
			continue
		}

		tok := token.New(token.CategoryShadow, "shadow."+name, token.Value{Raw: strings.Join(joined, " ")})
		tok.Properties = props
		tok.SourceFile = sourceFile
		res.Tokens = append(res.Tokens, tok)
	}
	return res
}
