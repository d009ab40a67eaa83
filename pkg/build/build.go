// Package build collects the non-token slices of the design system (docs,
// icons, component schemas, CSS utilities) from a source checkout. Like the
// token normalizers, every collector degrades per file: a malformed input
// contributes a warning, never a failed build.
package build

import (
	"log/slog"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
)

// Collection is everything the collectors gathered, plus warnings for the
// units that could not contribute.
type Collection struct {
	Components []store.Component
	Utilities  []store.Utility
	Docs       []store.DocRecord
	Icons      []store.IconRow
	Warnings   []string
}

// Collect runs every collector against a source checkout rooted at root.
// Missing directories simply contribute zero records for that slice.
func Collect(root string, log *slog.Logger) Collection {
	if log == nil {
		log = slog.Default()
	}

	var c Collection

	docs, warns := CollectDocs(root)
	c.Docs = docs
	c.Warnings = append(c.Warnings, warns...)

	icons, warns := CollectIcons(root)
	c.Icons = icons
	c.Warnings = append(c.Warnings, warns...)

	comps, warns := CollectComponents(root)
	c.Components = comps
	c.Warnings = append(c.Warnings, warns...)

	utils, warns := CollectUtilities(root)
	c.Utilities = utils
	c.Warnings = append(c.Warnings, warns...)

	for _, w := range c.Warnings {
		log.Warn("collection warning", "message", w)
	}
	log.Info("collection complete",
		"docs", len(c.Docs),
		"icons", len(c.Icons),
		"components", len(c.Components),
		"utilities", len(c.Utilities),
		"warnings", len(c.Warnings))

	return c
}
