// Package search implements the cascading full-text search strategy used for
// documentation and icon lookup: an ordered list of FTS5 expressions from
// strictest (exact phrase) to loosest (prefix OR), executed until one yields
// results.
package search

import (
	"regexp"
	"strings"
)

// sanitizeRe strips everything outside word, space and hyphen classes before
// the query is split into terms.
var sanitizeRe = regexp.MustCompile(`[^\w\s-]+`)

// Plan produces the ordered expression list for a free-text query, strictest
// first. Single-term queries get one prefix expression; multi-term queries
// get the phrase, conjunctive and disjunctive forms. A query with no usable
// terms falls back to the trimmed original as a literal best effort.
func Plan(query string) []string {
	terms := Terms(query)

	switch len(terms) {
	case 0:
		return []string{strings.TrimSpace(query)}
	case 1:
		return []string{terms[0] + "*"}
	}

	prefixed := make([]string, len(terms))
	for i, t := range terms {
		prefixed[i] = t + "*"
	}

	return []string{
		`"` + strings.Join(terms, " ") + `"`,
		strings.Join(prefixed, " "),
		strings.Join(prefixed, " OR "),
	}
}

// Terms sanitizes a query and splits it into search terms, dropping terms of
// length one or less.
func Terms(query string) []string {
	cleaned := sanitizeRe.ReplaceAllString(query, " ")

	var terms []string
	for _, t := range strings.Fields(cleaned) {
		if len(t) > 1 {
			terms = append(terms, t)
		}
	}
	return terms
}
