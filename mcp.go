package main

import (
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/ZephyrDeng/flamescan/analyzer"
)

// NewMCPCmd creates the mcp command, which serves the analyses as MCP
// tools over stdio.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve flamegraph analysis as MCP tools over stdio",
		Long: `Mcp starts a Model Context Protocol server on stdin/stdout exposing two
tools: 'analyze_flamegraph' for flamegraph SVGs and 'analyze_profile' for
raw pprof profiles. Inputs may be local paths, file:// URIs, or
http(s):// URLs.`,
		Args:          cobra.NoArgs,
		RunE:          runMCPServer,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// runMCPServer builds the MCP server, registers the tools and serves on
// stdio until the client disconnects.
func runMCPServer(cmd *cobra.Command, args []string) error {
	mcpServer := server.NewMCPServer(
		"Flamescan",
		version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	flamegraphTool := mcp.NewTool("analyze_flamegraph",
		mcp.WithDescription("Analyze a flamegraph SVG and return a sorted summary of the hottest codepaths."),
		mcp.WithString("svg_uri",
			mcp.Description("URI of the flamegraph SVG to analyze ('file://', 'http://', 'https://' or a plain local path)."),
			mcp.Required(),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Maximum number of rows in the report."),
			mcp.DefaultNumber(50.0),
		),
		mcp.WithNumber("min_percent",
			mcp.Description("Drop groups whose maximum percentage is below this threshold."),
			mcp.DefaultNumber(0.0),
		),
		mcp.WithString("group_by",
			mcp.Description("Group results by function, module or crate."),
			mcp.DefaultString(analyzer.GroupByFunction),
			mcp.Enum(analyzer.GroupByFunction, analyzer.GroupByModule, analyzer.GroupByCrate),
		),
		mcp.WithBoolean("demangle",
			mcp.Description("Simplify Rust/C++ symbol names by removing template parameters."),
			mcp.DefaultBool(false),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort rows by samples or percent."),
			mcp.DefaultString(analyzer.SortBySamples),
			mcp.Enum(analyzer.SortBySamples, analyzer.SortByPercent),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format of the analysis."),
			mcp.DefaultString(analyzer.FormatText),
			mcp.Enum(analyzer.FormatText, analyzer.FormatMarkdown, analyzer.FormatJSON),
		),
	)

	profileTool := mcp.NewTool("analyze_profile",
		mcp.WithDescription("Flatten a raw pprof profile by function and return the same hot-path summary as analyze_flamegraph."),
		mcp.WithString("profile_uri",
			mcp.Description("URI of the pprof profile to analyze ('file://', 'http://', 'https://' or a plain local path)."),
			mcp.Required(),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Maximum number of rows in the report."),
			mcp.DefaultNumber(50.0),
		),
		mcp.WithNumber("min_percent",
			mcp.Description("Drop groups whose maximum percentage is below this threshold."),
			mcp.DefaultNumber(0.0),
		),
		mcp.WithString("group_by",
			mcp.Description("Group results by function, module or crate."),
			mcp.DefaultString(analyzer.GroupByFunction),
			mcp.Enum(analyzer.GroupByFunction, analyzer.GroupByModule, analyzer.GroupByCrate),
		),
		mcp.WithBoolean("demangle",
			mcp.Description("Simplify Rust/C++ symbol names by removing template parameters."),
			mcp.DefaultBool(false),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort rows by samples or percent."),
			mcp.DefaultString(analyzer.SortBySamples),
			mcp.Enum(analyzer.SortBySamples, analyzer.SortByPercent),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format of the analysis."),
			mcp.DefaultString(analyzer.FormatText),
			mcp.Enum(analyzer.FormatText, analyzer.FormatMarkdown, analyzer.FormatJSON),
		),
	)

	mcpServer.AddTool(flamegraphTool, handleAnalyzeFlamegraph)
	mcpServer.AddTool(profileTool, handleAnalyzeProfile)

	log.Println("Starting Flamescan MCP server via stdio...")
	return server.ServeStdio(mcpServer)
}
