package normalize

import "github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"

// spacingStep is one entry of the fixed magic-unit multiplier series.
type spacingStep struct {
	name       string
	multiplier float64
}

// spacingSeries is the design system's spacing scale, in magic units.
// The names follow the mu<multiplier*100> convention.
var spacingSeries = []spacingStep{
	{"mu025", 0.25},
	{"mu050", 0.5},
	{"mu075", 0.75},
	{"mu100", 1},
	{"mu125", 1.25},
	{"mu150", 1.5},
	{"mu200", 2},
	{"mu250", 2.5},
	{"mu300", 3},
	{"mu400", 4},
	{"mu500", 5},
	{"mu600", 6},
	{"mu700", 7},
	{"mu800", 8},
	{"mu900", 9},
	{"mu1000", 10},
}

// NormalizeSpacing generates the spacing tokens. Spacing is a synthetic
// series derived from the magic unit, not parsed from source files, so this
// normalizer has no inputs and cannot fail. The magic-unit token itself is
// always emitted first.
func NormalizeSpacing() Result {
	toks := make([]token.Token, 0, len(spacingSeries)+1)

	base := token.New(token.CategorySpacing, "spacing.magic-unit", token.ParseValue(remString(1)))
	base.ValueComputed = pxString(MagicUnitPx)
	toks = append(toks, base)

	for _, step := range spacingSeries {
		tok := token.New(token.CategorySpacing, "spacing."+step.name, token.ParseValue(remString(step.multiplier)))
		tok.ValueComputed = pxString(step.multiplier * MagicUnitPx)
		toks = append(toks, tok)
	}

	return Result{Tokens: toks}
}
