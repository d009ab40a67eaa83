package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
)

// snippetMaxLen caps highlighted snippet text returned to callers.
const snippetMaxLen = 200

// DocIndex is the documentation read capability the executor needs from the
// backing store.
type DocIndex interface {
	SearchDocs(ctx context.Context, expr string, limit int) ([]store.DocResult, error)
}

// IconIndex is the icon read capability the executor needs.
type IconIndex interface {
	SearchIcons(ctx context.Context, expr string, limit int) ([]store.IconRow, error)
}

// Icon is an icon grouped across its size variants, sizes ascending.
type Icon struct {
	Name           string   `json:"name"`
	Type           string   `json:"type,omitempty"`
	ViewBox        string   `json:"viewBox,omitempty"`
	AvailableSizes []int    `json:"availableSizes"`
	Paths          []string `json:"paths,omitempty"`
}

// DocOutcome is the result of a documentation search. Empty Results with a
// nil error is the defined "not found" outcome, never an exception.
type DocOutcome struct {
	Results   []store.DocResult `json:"results"`
	Attempted []string          `json:"-"`
}

// Found reports whether any strategy produced results.
func (o DocOutcome) Found() bool { return len(o.Results) > 0 }

// IconOutcome is the result of an icon search after grouping.
type IconOutcome struct {
	Icons     []Icon   `json:"icons"`
	Attempted []string `json:"-"`
}

// Found reports whether any strategy produced results.
func (o IconOutcome) Found() bool { return len(o.Icons) > 0 }

// Executor runs planner-produced expression lists against the store's text
// indexes. Each invocation is a stateless pass through the strategy list,
// terminating at the first non-empty result set.
type Executor struct {
	docs   DocIndex
	icons  IconIndex
	logger *slog.Logger
}

// NewExecutor creates an executor over the given indexes.
func NewExecutor(docs DocIndex, icons IconIndex, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{docs: docs, icons: icons, logger: logger}
}

// Docs searches documentation. Expressions are tried strictest first; a
// syntax error on one attempt falls through to the next. Only a structural
// store failure is returned as an error.
func (e *Executor) Docs(ctx context.Context, query string, limit int) (DocOutcome, error) {
	outcome := DocOutcome{}

	for _, expr := range Plan(query) {
		outcome.Attempted = append(outcome.Attempted, expr)

		results, err := e.docs.SearchDocs(ctx, expr, limit)
		if err != nil {
			if errors.Is(err, store.ErrQuerySyntax) {
				e.logger.Debug("index rejected expression, falling back", "expression", expr)
				continue
			}
			return DocOutcome{}, err
		}
		if len(results) == 0 {
			continue
		}

		for i := range results {
			results[i].Snippet = truncateSnippet(results[i].Snippet, snippetMaxLen)
		}
		outcome.Results = results
		return outcome, nil
	}

	return outcome, nil
}

// Icons searches the icon index, grouping rows by base icon name and
// collecting the matching sizes into an ascending, deduplicated list.
func (e *Executor) Icons(ctx context.Context, query string, limit int) (IconOutcome, error) {
	outcome := IconOutcome{}

	for _, expr := range Plan(query) {
		outcome.Attempted = append(outcome.Attempted, expr)

		rows, err := e.icons.SearchIcons(ctx, expr, limit)
		if err != nil {
			if errors.Is(err, store.ErrQuerySyntax) {
				e.logger.Debug("index rejected expression, falling back", "expression", expr)
				continue
			}
			return IconOutcome{}, err
		}
		if len(rows) == 0 {
			continue
		}

		outcome.Icons = groupIcons(rows)
		return outcome, nil
	}

	return outcome, nil
}

// groupIcons merges size variants of the same base icon into one entry.
func groupIcons(rows []store.IconRow) []Icon {
	index := make(map[string]int)
	var icons []Icon

	for _, row := range rows {
		i, ok := index[row.BaseName]
		if !ok {
			index[row.BaseName] = len(icons)
			icons = append(icons, Icon{
				Name:    row.BaseName,
				Type:    row.Type,
				ViewBox: row.ViewBox,
				Paths:   row.Paths,
			})
			i = len(icons) - 1
		}
		icons[i].AvailableSizes = appendSize(icons[i].AvailableSizes, row.Size)
	}

	for i := range icons {
		sort.Ints(icons[i].AvailableSizes)
	}
	return icons
}

// appendSize adds a size unless already present.
func appendSize(sizes []int, size int) []int {
	for _, s := range sizes {
		if s == size {
			return sizes
		}
	}
	return append(sizes, size)
}

// truncateSnippet caps snippet text at max runes, appending an ellipsis
// marker when cut.
func truncateSnippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
