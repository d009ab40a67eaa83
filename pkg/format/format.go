// Package format renders normalized tokens and lookup results into the
// textual shapes returned by the MCP tools: JSON payloads, CSS custom
// property blocks, SCSS variable lists, and usage snippets.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// Format names the supported token output formats.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
)

// ValidFormat reports whether s names a supported token output format.
func ValidFormat(s string) bool {
	switch Format(s) {
	case FormatJSON, FormatCSS, FormatSCSS:
		return true
	}
	return false
}

// Tokens renders tokens in the requested format.
func Tokens(toks []token.Token, f Format) (string, error) {
	switch f {
	case FormatCSS:
		return TokensCSS(toks), nil
	case FormatSCSS:
		return TokensSCSS(toks), nil
	case FormatJSON:
		return TokensJSON(toks)
	}
	return "", fmt.Errorf("unsupported token format %q", f)
}

// TokensJSON renders tokens as an indented JSON array.
func TokensJSON(toks []token.Token) (string, error) {
	if toks == nil {
		toks = []token.Token{}
	}
	out, err := json.MarshalIndent(toks, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tokens: %w", err)
	}
	return string(out), nil
}

// TokensCSS renders tokens as a :root block of CSS custom properties.
func TokensCSS(toks []token.Token) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, t := range toks {
		fmt.Fprintf(&b, "  %s: %s;\n", t.CSSVariable, t.ValueRaw)
	}
	b.WriteString("}\n")
	return b.String()
}

// TokensSCSS renders tokens as SCSS variable declarations, one per line.
func TokensSCSS(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		fmt.Fprintf(&b, "%s: %s;\n", t.SCSSVariable, t.ValueRaw)
	}
	return b.String()
}
