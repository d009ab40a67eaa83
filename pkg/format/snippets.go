package format

import (
	"fmt"
	"strings"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/search"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
)

// ComponentSnippet assembles a Vue usage snippet for a component: the
// template tag with its required props filled in, plus the import line
// when an import path is known.
func ComponentSnippet(c *store.Component) string {
	tag := c.Tag
	if tag == "" {
		tag = "M" + capitalize(c.Name)
	}

	var attrs []string
	for _, p := range c.Props {
		if !p.Required {
			continue
		}
		attrs = append(attrs, fmt.Sprintf("%s=%q", kebabCase(p.Name), propPlaceholder(p)))
	}

	open := "<" + tag
	if len(attrs) > 0 {
		open += " " + strings.Join(attrs, " ")
	}

	var b strings.Builder
	b.WriteString("<template>\n")
	fmt.Fprintf(&b, "  %s>%s</%s>\n", open, capitalize(c.Name), tag)
	b.WriteString("</template>\n")

	if c.ImportPath != "" {
		b.WriteString("\n<script>\n")
		fmt.Fprintf(&b, "import %s from '%s'\n", tag, c.ImportPath)
		b.WriteString("</script>\n")
	}
	return b.String()
}

// propPlaceholder picks a usable example value for a required prop.
func propPlaceholder(p store.Prop) string {
	if p.Default != "" {
		return p.Default
	}
	if len(p.AllowedValues) > 0 {
		return p.AllowedValues[0]
	}
	return "..."
}

// IconSnippet assembles an inline SVG usage string for an icon at the given
// size. A size not in the icon's AvailableSizes falls back to the smallest
// available one.
func IconSnippet(icon search.Icon, size int) string {
	if !containsInt(icon.AvailableSizes, size) && len(icon.AvailableSizes) > 0 {
		size = icon.AvailableSizes[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="%s" width="%d" height="%d" fill="currentColor" aria-hidden="true">`, viewBoxFor(icon, size), size, size)
	b.WriteString("\n")
	for _, d := range icon.Paths {
		fmt.Fprintf(&b, "  <path d=%q />\n", d)
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func viewBoxFor(icon search.Icon, size int) string {
	if icon.ViewBox != "" {
		return icon.ViewBox
	}
	return fmt.Sprintf("0 0 %d %d", size, size)
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// kebabCase converts camelCase prop names to their kebab-case template form.
func kebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
