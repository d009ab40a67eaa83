package mcp

import "github.com/mark3labs/mcp-go/mcp"

func listComponentsTool() mcp.Tool {
	return mcp.NewTool("list_components",
		mcp.WithDescription("List every design-system component with its description."),
	)
}

func getComponentPropsTool() mcp.Tool {
	return mcp.NewTool("get_component_props",
		mcp.WithDescription("Full prop schema for one component: types, defaults, allowed values."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name, e.g. \"button\"."),
		),
	)
}

func getComponentSnippetTool() mcp.Tool {
	return mcp.NewTool("get_component_snippet",
		mcp.WithDescription("Ready-to-paste Vue usage snippet for one component."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name, e.g. \"button\"."),
		),
	)
}

func getTokensTool() mcp.Tool {
	return mcp.NewTool("get_tokens",
		mcp.WithDescription("Design tokens of one category, as JSON records, CSS custom properties, or SCSS variables."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Token category."),
			mcp.Enum("color", "spacing", "shadow", "border", "radius", "screen", "typography", "grid"),
		),
		mcp.WithString("format",
			mcp.Description("Output format (default json)."),
			mcp.Enum("json", "css", "scss"),
		),
	)
}

func getCSSUtilitiesTool() mcp.Tool {
	return mcp.NewTool("get_css_utilities",
		mcp.WithDescription("CSS utility classes, optionally filtered by the CSS property they set."),
		mcp.WithString("property",
			mcp.Description("CSS property filter, e.g. \"padding\". Empty returns all utilities."),
		),
	)
}

func searchDocsTool() mcp.Tool {
	return mcp.NewTool("search_docs",
		mcp.WithDescription("Free-text search over the documentation pages."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text query, e.g. \"button variants\"."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 10)."),
		),
	)
}

func searchIconsTool() mcp.Tool {
	return mcp.NewTool("search_icons",
		mcp.WithDescription("Free-text icon lookup. Matching icons are grouped by name with their available sizes."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Icon name or fragment, e.g. \"arrow\"."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of index rows scanned (default 20)."),
		),
	)
}
