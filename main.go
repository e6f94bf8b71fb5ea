// Package main provides the entry point for the flamescan CLI.
//
// Flamescan extracts the profiling data embedded in flamegraph SVG output
// and prints a sorted summary of the hottest codepaths. It can also flatten
// raw pprof profiles into the same report, and serve both analyses as MCP
// tools over stdio.
//
// Usage:
//
//	flamescan <flamegraph.svg> [flags]
//	flamescan pprof <profile> [flags]
//	flamescan mcp
//
// See --help for all available options.
package main

func main() {
	Execute()
}
