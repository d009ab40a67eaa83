package normalize

import (
	"fmt"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

// Warning records a non-fatal problem with a single source unit. One
// malformed file must never prevent other files or categories from being
// normalized, so failures are collected here instead of aborting the pass.
type Warning struct {
	SourceFile string         `json:"sourceFile"`
	Category   token.Category `json:"category,omitempty"`
	Message    string         `json:"message"`
}

func (w Warning) String() string {
	if w.SourceFile == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.SourceFile, w.Message)
}

// Result is the outcome of a normalization pass: the tokens that could be
// produced plus warnings for every unit that could not contribute.
type Result struct {
	Tokens   []token.Token
	Warnings []Warning
}

// merge appends another result's tokens and warnings.
func (r *Result) merge(other Result) {
	r.Tokens = append(r.Tokens, other.Tokens...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// warnf records a warning for a source unit.
func (r *Result) warnf(sourceFile string, category token.Category, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{
		SourceFile: sourceFile,
		Category:   category,
		Message:    fmt.Sprintf(format, args...),
	})
}
