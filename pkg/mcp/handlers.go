package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/format"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/search"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/token"
)

const (
	defaultDocLimit  = 10
	defaultIconLimit = 20
)

// jsonResult marshals v as an indented JSON tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

// --- components ---

type componentSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	comps, err := s.store.ListComponents(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]componentSummary, 0, len(comps))
	for _, c := range comps {
		summaries = append(summaries, componentSummary{Name: c.Name, Description: c.Description})
	}
	return jsonResult(summaries)
}

func (s *Server) handleGetComponentProps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	c, found, err := s.store.GetComponent(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("component %q not found; use list_components to see what exists", name)), nil
	}
	return jsonResult(c)
}

func (s *Server) handleGetComponentSnippet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	c, found, err := s.store.GetComponent(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("component %q not found; use list_components to see what exists", name)), nil
	}
	return mcp.NewToolResultText(format.ComponentSnippet(c)), nil
}

// --- tokens ---

func (s *Server) handleGetTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !token.ValidCategory(category) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown token category %q", category)), nil
	}

	f := req.GetString("format", string(format.FormatJSON))
	if !format.ValidFormat(f) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q (expected json, css, or scss)", f)), nil
	}

	toks, err := s.store.TokensByCategory(ctx, token.Category(category))
	if err != nil {
		return nil, err
	}

	out, err := format.Tokens(toks, format.Format(f))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(out), nil
}

// --- utilities ---

func (s *Server) handleGetCSSUtilities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	property := req.GetString("property", "")

	utils, err := s.store.ListUtilities(ctx, property)
	if err != nil {
		return nil, err
	}
	if utils == nil {
		utils = []store.Utility{}
	}
	return jsonResult(utils)
}

// --- search ---

type docSearchResponse struct {
	Results []store.DocResult `json:"results"`
	Message string            `json:"message,omitempty"`
}

func (s *Server) handleSearchDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", defaultDocLimit)

	outcome, err := s.executor.Docs(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	resp := docSearchResponse{Results: outcome.Results}
	if resp.Results == nil {
		resp.Results = []store.DocResult{}
	}
	if !outcome.Found() {
		resp.Message = fmt.Sprintf("no documentation found for %q", query)
	}
	return jsonResult(resp)
}

type iconMatch struct {
	search.Icon
	Snippet string `json:"snippet"`
}

type iconSearchResponse struct {
	Icons   []iconMatch `json:"icons"`
	Message string      `json:"message,omitempty"`
}

func (s *Server) handleSearchIcons(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", defaultIconLimit)

	outcome, err := s.executor.Icons(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	resp := iconSearchResponse{Icons: make([]iconMatch, 0, len(outcome.Icons))}
	for _, icon := range outcome.Icons {
		size := 0
		if len(icon.AvailableSizes) > 0 {
			size = icon.AvailableSizes[0]
		}
		resp.Icons = append(resp.Icons, iconMatch{
			Icon:    icon,
			Snippet: format.IconSnippet(icon, size),
		})
	}
	if !outcome.Found() {
		resp.Message = fmt.Sprintf("no icons found for %q", query)
	}
	return jsonResult(resp)
}
