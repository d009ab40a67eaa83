package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

func colorTree() map[string]any {
	return map[string]any{
		"color": map[string]any{
			"primary-01": map[string]any{
				"100": map[string]any{"value": "#fff3e0"},
				"500": map[string]any{"value": "#f59100", "description": "brand orange"},
			},
			"grey": map[string]any{
				"000": map[string]any{"value": "#ffffff"},
			},
		},
	}
}

func TestFlatten_NestedTree(t *testing.T) {
	toks := Flatten(colorTree(), token.CategoryColor, "color.json")
	require.Len(t, toks, 3)

	paths := make([]string, len(toks))
	for i, tok := range toks {
		paths[i] = tok.Path
	}
	assert.Equal(t, []string{
		"color.grey.000",
		"color.primary-01.100",
		"color.primary-01.500",
	}, paths)

	assert.Equal(t, "color-primary-01-500", toks[2].Name)
	assert.Equal(t, "--color-primary-01-500", toks[2].CSSVariable)
	assert.Equal(t, "$color-primary-01-500", toks[2].SCSSVariable)
	assert.Equal(t, "#f59100", toks[2].ValueRaw)
	assert.Equal(t, "hex", toks[2].ValueUnit)
	assert.Equal(t, "color.json", toks[2].SourceFile)
}

func TestFlatten_Idempotent(t *testing.T) {
	first := Flatten(colorTree(), token.CategoryColor, "color.json")
	second := Flatten(colorTree(), token.CategoryColor, "color.json")
	assert.Equal(t, first, second)
}

func TestFlatten_LeafCheckPrecedesDescent(t *testing.T) {
	// A leaf node that also carries extra keys must not be descended into.
	tree := map[string]any{
		"spacing": map[string]any{
			"base": map[string]any{
				"value":       "1rem",
				"description": "base unit",
				"meta":        map[string]any{"value": "nested"},
			},
		},
	}
	toks := Flatten(tree, token.CategorySpacing, "")
	require.Len(t, toks, 1)
	assert.Equal(t, "spacing.base", toks[0].Path)
	assert.Equal(t, "1rem", toks[0].ValueRaw)
}

func TestFlatten_NumericLeafValues(t *testing.T) {
	tree := map[string]any{
		"radius": map[string]any{
			"m": map[string]any{"value": float64(4)},
		},
	}
	toks := Flatten(tree, token.CategoryRadius, "")
	require.Len(t, toks, 1)
	assert.Equal(t, "4", toks[0].ValueRaw)
	require.NotNil(t, toks[0].ValueNumber)
	assert.Equal(t, float64(4), *toks[0].ValueNumber)
}

func TestFlatten_SkipsNonObjectChildren(t *testing.T) {
	tree := map[string]any{
		"color": map[string]any{
			"comment": "not a token group",
			"grey": map[string]any{
				"000": map[string]any{"value": "#fff"},
			},
		},
	}
	toks := Flatten(tree, token.CategoryColor, "")
	require.Len(t, toks, 1)
	assert.Equal(t, "color.grey.000", toks[0].Path)
}

func TestFlattenCategory_WrappedAndUnwrapped(t *testing.T) {
	wrapped := colorTree()
	unwrapped := colorTree()["color"].(map[string]any)

	fromWrapped := flattenCategory(wrapped, token.CategoryColor, "color.json")
	fromUnwrapped := flattenCategory(unwrapped, token.CategoryColor, "color.json")
	assert.Equal(t, fromWrapped, fromUnwrapped)
}

func TestFlatten_DeepTreeNoRecursionLimit(t *testing.T) {
	// Build a 500-level-deep chain; the worklist traversal must handle it.
	leafNode := map[string]any{"value": "#000000"}
	node := map[string]any{"end": leafNode}
	for i := 0; i < 500; i++ {
		node = map[string]any{"n": node}
	}
	toks := Flatten(map[string]any{"color": node}, token.CategoryColor, "")
	require.Len(t, toks, 1)
	assert.Equal(t, "#000000", toks[0].ValueRaw)
}
