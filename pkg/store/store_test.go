package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// setupTestStore builds a database with fixture data and opens it read-only.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mozaic.db")

	four := 4.0
	data := BuildData{
		Tokens: []token.Token{
			func() token.Token {
				tok := token.New(token.CategoryColor, "color.primary-01.500", token.ParseValue("#f59100"))
				tok.Subcategory = "primary"
				return tok
			}(),
			func() token.Token {
				tok := token.New(token.CategorySpacing, "spacing.mu100", token.ParseValue("1rem"))
				tok.ValueComputed = "16px"
				return tok
			}(),
			{
				Category:     token.CategoryShadow,
				Name:         "shadow-s",
				Path:         "shadow.s",
				CSSVariable:  token.CSSVariable(token.CategoryShadow, "shadow.s"),
				SCSSVariable: token.SCSSVariable(token.CategoryShadow, "shadow.s"),
				ValueRaw:     "0 2px 4px 0",
				Properties: []token.Property{
					{Name: "blur", Value: "4px", Number: &four, Unit: "px"},
				},
			},
		},
		Components: []Component{
			{
				Name:        "button",
				Description: "Buttons trigger actions",
				Tag:         "MButton",
				ImportPath:  "@mozaic-ds/vue/src/components/button/MButton.vue",
				Props: []Prop{
					{Name: "theme", Type: "string", AllowedValues: []string{"solid", "bordered"}},
					{Name: "size", Type: "string"},
				},
			},
			{Name: "badge", Description: "Badges display a status"},
		},
		Utilities: []Utility{
			{ClassName: "mu-p-100", Property: "padding", Value: "1rem"},
			{ClassName: "mu-m-100", Property: "margin", Value: "1rem"},
		},
		Docs: []DocRecord{
			{Title: "Button variants", Path: "components/button.md", Category: "components",
				Body: "Buttons come in solid and bordered variants."},
			{Title: "Color usage", Path: "foundations/color.md", Category: "foundations",
				Body: "Primary colors express the brand."},
		},
		Icons: []IconRow{
			{Name: "ArrowBottom16", BaseName: "ArrowBottom", Type: "navigation", Size: 16,
				ViewBox: "0 0 16 16", Paths: []string{"M1 1h14"}},
			{Name: "ArrowBottom24", BaseName: "ArrowBottom", Type: "navigation", Size: 24,
				ViewBox: "0 0 24 24", Paths: []string{"M2 2h20"}},
		},
	}

	require.NoError(t, Build(context.Background(), path, data))

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// --- open ---

func TestOpen_MissingFileFails(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
}

// --- tokens ---

func TestTokensByCategory(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	toks, err := s.TokensByCategory(ctx, token.CategoryColor)
	require.NoError(t, err)
	require.Len(t, toks, 1)

	tok := toks[0]
	assert.Equal(t, "color.primary-01.500", tok.Path)
	assert.Equal(t, "primary", tok.Subcategory)
	assert.Equal(t, "--color-primary-01-500", tok.CSSVariable)
	assert.Equal(t, "hex", tok.ValueUnit)
	assert.Nil(t, tok.ValueNumber)
}

func TestTokensByCategory_RoundTripsProperties(t *testing.T) {
	s := setupTestStore(t)

	toks, err := s.TokensByCategory(context.Background(), token.CategoryShadow)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	require.Len(t, toks[0].Properties, 1)
	assert.Equal(t, "blur", toks[0].Properties[0].Name)
	require.NotNil(t, toks[0].Properties[0].Number)
	assert.Equal(t, 4.0, *toks[0].Properties[0].Number)
}

func TestTokensByCategory_CachesResults(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	first, err := s.TokensByCategory(ctx, token.CategorySpacing)
	require.NoError(t, err)
	second, err := s.TokensByCategory(ctx, token.CategorySpacing)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, s.tokenCache.Contains(string(token.CategorySpacing)))
}

func TestTokensByCategory_EmptyCategory(t *testing.T) {
	s := setupTestStore(t)
	toks, err := s.TokensByCategory(context.Background(), token.CategoryGrid)
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestAllTokens(t *testing.T) {
	s := setupTestStore(t)
	toks, err := s.AllTokens(context.Background())
	require.NoError(t, err)
	assert.Len(t, toks, 3)
}

// --- components ---

func TestListComponents(t *testing.T) {
	s := setupTestStore(t)
	comps, err := s.ListComponents(context.Background())
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, "badge", comps[0].Name)
	assert.Equal(t, "button", comps[1].Name)
}

func TestGetComponent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	c, found, err := s.GetComponent(ctx, "button")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "MButton", c.Tag)
	require.Len(t, c.Props, 2)
	assert.Equal(t, []string{"solid", "bordered"}, c.Props[0].AllowedValues)

	// Case-insensitive lookup.
	_, found, err = s.GetComponent(ctx, "Button")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestGetComponent_NotFoundIsNotAnError(t *testing.T) {
	s := setupTestStore(t)
	c, found, err := s.GetComponent(context.Background(), "carousel")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, c)
}

// --- utilities ---

func TestListUtilities(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	all, err := s.ListUtilities(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	padding, err := s.ListUtilities(ctx, "padding")
	require.NoError(t, err)
	require.Len(t, padding, 1)
	assert.Equal(t, "mu-p-100", padding[0].ClassName)
}

// --- full-text search ---

func TestSearchDocs(t *testing.T) {
	s := setupTestStore(t)

	results, err := s.SearchDocs(context.Background(), `"button variants"`, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Button variants", results[0].Title)
	assert.Equal(t, "components/button.md", results[0].Path)
	assert.NotEmpty(t, results[0].Snippet)
}

func TestSearchDocs_NoMatches(t *testing.T) {
	s := setupTestStore(t)
	results, err := s.SearchDocs(context.Background(), `nonexistentterm`, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchDocs_SyntaxErrorIsClassified(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.SearchDocs(context.Background(), `AND OR (`, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuerySyntax)
}

func TestSearchIcons(t *testing.T) {
	s := setupTestStore(t)

	rows, err := s.SearchIcons(context.Background(), `arrow*`, 20)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ArrowBottom", rows[0].BaseName)
	assert.Equal(t, []string{"M1 1h14"}, rows[0].Paths[:1])
}

// --- reload ---

func TestReload_PurgesTokenCache(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.TokensByCategory(ctx, token.CategoryColor)
	require.NoError(t, err)
	require.True(t, s.tokenCache.Contains(string(token.CategoryColor)))

	require.NoError(t, s.Reload())
	assert.False(t, s.tokenCache.Contains(string(token.CategoryColor)))

	// Reads still work against the reopened handle.
	toks, err := s.TokensByCategory(ctx, token.CategoryColor)
	require.NoError(t, err)
	assert.Len(t, toks, 1)
}
