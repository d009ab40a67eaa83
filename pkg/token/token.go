// Package token defines the normalized design token model shared by the
// normalization pipeline, the store, and the output formatters.
package token

import "strings"

// Category classifies a design token.
type Category string

const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryShadow     Category = "shadow"
	CategoryBorder     Category = "border"
	CategoryRadius     Category = "radius"
	CategoryScreen     Category = "screen"
	CategoryTypography Category = "typography"
	CategoryGrid       Category = "grid"
)

// Categories lists every valid token category in a stable order.
var Categories = []Category{
	CategoryColor,
	CategorySpacing,
	CategoryShadow,
	CategoryBorder,
	CategoryRadius,
	CategoryScreen,
	CategoryTypography,
	CategoryGrid,
}

// ValidCategory reports whether s names a known token category.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Property is a named sub-value of a composite token (e.g. a shadow's blur).
type Property struct {
	Name   string   `json:"name"`
	Value  string   `json:"value"`
	Number *float64 `json:"number,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

// Token is a flat, normalized design value. Tokens are produced once by the
// offline build pass and treated as immutable read-only records afterwards.
type Token struct {
	Category      Category   `json:"category"`
	Subcategory   string     `json:"subcategory,omitempty"`
	Name          string     `json:"name"`
	Path          string     `json:"path"`
	CSSVariable   string     `json:"cssVariable"`
	SCSSVariable  string     `json:"scssVariable"`
	ValueRaw      string     `json:"value"`
	ValueNumber   *float64   `json:"valueNumber,omitempty"`
	ValueUnit     string     `json:"valueUnit,omitempty"`
	ValueComputed string     `json:"valueComputed,omitempty"`
	Properties    []Property `json:"properties,omitempty"`
	SourceFile    string     `json:"-"`
}

// New constructs a token from a category, a dot-delimited path, and a parsed
// value. Name and the css/scss variables are derived, never set directly.
func New(category Category, path string, v Value) Token {
	return Token{
		Category:     category,
		Name:         FlatName(path),
		Path:         path,
		CSSVariable:  CSSVariable(category, path),
		SCSSVariable: SCSSVariable(category, path),
		ValueRaw:     v.Raw,
		ValueNumber:  v.Number,
		ValueUnit:    v.Unit,
	}
}

// FlatName converts a dot-delimited path into a hyphenated identifier.
func FlatName(path string) string {
	return strings.ReplaceAll(path, ".", "-")
}

// CSSVariable derives the CSS custom property name for a token. The category
// is prefixed unless the path already starts with it, so both
// "color.primary-01.500" and "mu100" under spacing come out fully qualified.
func CSSVariable(category Category, path string) string {
	return "--" + qualifiedName(category, path)
}

// SCSSVariable derives the SCSS variable name for a token, following the same
// qualification rule as CSSVariable.
func SCSSVariable(category Category, path string) string {
	return "$" + qualifiedName(category, path)
}

func qualifiedName(category Category, path string) string {
	name := FlatName(path)
	prefix := string(category)
	if name == prefix || strings.HasPrefix(name, prefix+"-") {
		return name
	}
	return prefix + "-" + name
}
