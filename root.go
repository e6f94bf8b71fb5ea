package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZephyrDeng/flamescan/analyzer"
)

const version = "0.1.0"

// NewRootCmd creates the root command for flamescan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flamescan <flamegraph.svg>",
		Short: "Summarize the hottest codepaths in a flamegraph SVG",
		Long: `Flamescan parses the title elements of a flamegraph SVG (as produced by
cargo flamegraph, inferno, flamegraph.pl and friends), aggregates the
embedded sample counts by function, module or crate, and prints a sorted
plain-text summary of the hottest codepaths.

The input may be a local path, a file:// URI, or an http(s):// URL.

Examples:
  # Top 50 functions by sample count
  flamescan flamegraph.svg

  # Hot crates, simplified symbol names, above 1%
  flamescan flamegraph.svg --group-by crate --demangle --min-percent 1

  # Flatten a raw pprof profile into the same report
  flamescan pprof cpu.pb.gz --top 10

  # Serve the analysis as MCP tools over stdio
  flamescan mcp`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		RunE:          runAnalyzeSVG,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addReportFlags(cmd)
	cmd.AddCommand(NewPprofCmd())
	cmd.AddCommand(NewMCPCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addReportFlags registers the report-shaping flags shared by the SVG and
// pprof commands.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("top", "n", 50, "Show top N entries")
	cmd.Flags().Float64P("min-percent", "m", 0.0, "Minimum percentage threshold")
	cmd.Flags().StringP("group-by", "g", analyzer.GroupByFunction,
		"Group results by 'function', 'module' or 'crate'")
	cmd.Flags().BoolP("demangle", "d", false,
		"Simplify Rust/C++ symbol names by removing template parameters")
	cmd.Flags().StringP("sort-by", "s", analyzer.SortBySamples,
		"Sort by 'samples' or 'percent'")
	cmd.Flags().StringP("format", "f", analyzer.FormatText,
		"Output format: 'text', 'markdown' or 'json'")
}

// reportOptions reads the shared flags back into analyzer options,
// validating the enum-valued ones.
func reportOptions(cmd *cobra.Command) (analyzer.Options, string, error) {
	topN, _ := cmd.Flags().GetInt("top")
	minPercent, _ := cmd.Flags().GetFloat64("min-percent")
	groupBy, _ := cmd.Flags().GetString("group-by")
	demangle, _ := cmd.Flags().GetBool("demangle")
	sortBy, _ := cmd.Flags().GetString("sort-by")
	format, _ := cmd.Flags().GetString("format")

	switch groupBy {
	case analyzer.GroupByFunction, analyzer.GroupByModule, analyzer.GroupByCrate:
	default:
		return analyzer.Options{}, "", fmt.Errorf("invalid --group-by value %q (want function, module or crate)", groupBy)
	}
	switch sortBy {
	case analyzer.SortBySamples, analyzer.SortByPercent:
	default:
		return analyzer.Options{}, "", fmt.Errorf("invalid --sort-by value %q (want samples or percent)", sortBy)
	}
	switch format {
	case analyzer.FormatText, analyzer.FormatMarkdown, analyzer.FormatJSON:
	default:
		return analyzer.Options{}, "", fmt.Errorf("invalid --format value %q (want text, markdown or json)", format)
	}

	opts := analyzer.Options{
		TopN:       topN,
		MinPercent: minPercent,
		GroupBy:    groupBy,
		Demangle:   demangle,
		SortBy:     sortBy,
	}
	return opts, format, nil
}

// runAnalyzeSVG executes the root command: read the SVG, run the pipeline,
// print the report.
func runAnalyzeSVG(cmd *cobra.Command, args []string) error {
	opts, format, err := reportOptions(cmd)
	if err != nil {
		return err
	}

	svg, err := readInput(args[0])
	if err != nil {
		return err
	}

	output, err := analyzer.AnalyzeFlamegraph(svg, opts, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// NewPprofCmd creates the pprof command, which feeds a raw pprof profile
// through the same grouping and report pipeline.
func NewPprofCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pprof <profile>",
		Short: "Summarize a raw pprof profile instead of an SVG",
		Long: `Pprof flattens the samples of a pprof profile (e.g. cpu.pb.gz) by
function and renders the same hot-path report as the SVG analysis.
Sample values are attributed flat to the top frame of each stack.`,
		Args:          cobra.ExactArgs(1),
		RunE:          runAnalyzePprof,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addReportFlags(cmd)
	return cmd
}

// runAnalyzePprof executes the pprof command.
func runAnalyzePprof(cmd *cobra.Command, args []string) error {
	opts, format, err := reportOptions(cmd)
	if err != nil {
		return err
	}

	prof, err := readProfile(args[0])
	if err != nil {
		return err
	}

	entries, err := analyzer.EntriesFromProfile(prof)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no samples found in the profile")
	}

	output, err := analyzer.AnalyzeEntries(entries, opts, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
