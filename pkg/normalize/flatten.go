// Package normalize turns heterogeneous nested source property trees into
// flat, typed, unit-aware design tokens. It is only exercised by the offline
// build pass; the running server reads its output from the store.
package normalize

import (
	"sort"
	"strings"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// leaf extracts the scalar value of a leaf node. A node is a leaf when it
// carries a "value" field holding a string or a JSON number. This check runs
// before the container check so leaf objects are never descended into.
func leaf(node map[string]any) (any, bool) {
	v, ok := node["value"]
	if !ok {
		return nil, false
	}
	switch v.(type) {
	case string, float64, int:
		return v, true
	}
	return nil, false
}

type frame struct {
	node map[string]any
	path string
}

// Flatten walks an arbitrarily nested property tree and emits one token per
// leaf, accumulating dot-delimited paths along the way. Traversal is an
// explicit worklist with keys visited in sorted order, so output is
// deterministic and independent of tree depth.
func Flatten(tree map[string]any, category token.Category, sourceFile string) []token.Token {
	var out []token.Token
	stack := []frame{{node: tree}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		keys := make([]string, 0, len(f.node))
		for k := range f.node {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		// Push in reverse so the stack pops keys in ascending order.
		for i := len(keys) - 1; i >= 0; i-- {
			k := keys[i]
			child, ok := f.node[k].(map[string]any)
			if !ok {
				continue
			}
			path := k
			if f.path != "" {
				path = f.path + "." + k
			}
			if raw, isLeaf := leaf(child); isLeaf {
				tok := token.New(category, path, token.ParseValue(raw))
				tok.SourceFile = sourceFile
				out = append(out, tok)
				continue
			}
			stack = append(stack, frame{node: child, path: path})
		}
	}

	// Source maps carry no order of their own; sort on path so repeated
	// flattening of the same tree yields identical output.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// flattenCategory flattens a source tree so that every path starts with the
// category segment. Source files come both wrapped ({"color": {...}}) and
// unwrapped; both shapes normalize identically.
func flattenCategory(tree map[string]any, category token.Category, sourceFile string) []token.Token {
	inner := unwrap(tree, category)
	return Flatten(map[string]any{string(category): inner}, category, sourceFile)
}

// unwrap strips a redundant outer key equal to the category name.
func unwrap(tree map[string]any, category token.Category) map[string]any {
	if len(tree) == 1 {
		if inner, ok := tree[string(category)].(map[string]any); ok {
			return inner
		}
	}
	return tree
}

// pathSegment returns the n-th dot-delimited segment of path, or "".
func pathSegment(path string, n int) string {
	segs := strings.Split(path, ".")
	if n < 0 || n >= len(segs) {
		return ""
	}
	return segs[n]
}
