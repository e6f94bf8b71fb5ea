package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ZephyrDeng/flamescan/analyzer"
)

// reportArgs pulls the shared report-shaping arguments out of an MCP tool
// request, applying the same defaults as the CLI flags.
func reportArgs(args map[string]interface{}) (analyzer.Options, string) {
	opts := analyzer.Options{
		TopN:       50,
		MinPercent: 0.0,
		GroupBy:    analyzer.GroupByFunction,
		SortBy:     analyzer.SortBySamples,
	}
	format := analyzer.FormatText

	if topN, ok := args["top_n"].(float64); ok && int(topN) > 0 {
		opts.TopN = int(topN)
	}
	if minPercent, ok := args["min_percent"].(float64); ok {
		opts.MinPercent = minPercent
	}
	if groupBy, ok := args["group_by"].(string); ok && groupBy != "" {
		opts.GroupBy = groupBy
	}
	if demangle, ok := args["demangle"].(bool); ok {
		opts.Demangle = demangle
	}
	if sortBy, ok := args["sort_by"].(string); ok && sortBy != "" {
		opts.SortBy = sortBy
	}
	if f, ok := args["output_format"].(string); ok && f != "" {
		format = f
	}
	return opts, format
}

// handleAnalyzeFlamegraph is the handler for the "analyze_flamegraph" MCP tool.
func handleAnalyzeFlamegraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	svgURI, ok := args["svg_uri"].(string)
	if !ok || svgURI == "" {
		return nil, fmt.Errorf("missing or invalid required argument: svg_uri (string)")
	}
	opts, format := reportArgs(args)

	log.Printf("Handling analyze_flamegraph: URI=%s, GroupBy=%s, TopN=%d, Format=%s",
		svgURI, opts.GroupBy, opts.TopN, format)

	svg, err := readInput(svgURI)
	if err != nil {
		return nil, fmt.Errorf("failed to read flamegraph SVG: %w", err)
	}

	result, err := analyzer.AnalyzeFlamegraph(svg, opts, format)
	if err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: result,
			},
		},
	}, nil
}

// handleAnalyzeProfile is the handler for the "analyze_profile" MCP tool.
func handleAnalyzeProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	profileURI, ok := args["profile_uri"].(string)
	if !ok || profileURI == "" {
		return nil, fmt.Errorf("missing or invalid required argument: profile_uri (string)")
	}
	opts, format := reportArgs(args)

	log.Printf("Handling analyze_profile: URI=%s, GroupBy=%s, TopN=%d, Format=%s",
		profileURI, opts.GroupBy, opts.TopN, format)

	prof, err := readProfile(profileURI)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	entries, err := analyzer.EntriesFromProfile(prof)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no samples found in the profile")
	}

	result, err := analyzer.AnalyzeEntries(entries, opts, format)
	if err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: result,
			},
		},
	}, nil
}
