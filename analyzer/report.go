package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// Output formats understood by the Analyze functions.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// NoEntriesMessage is returned by FormatReport when filtering and
// truncation leave nothing to show.
const NoEntriesMessage = "No entries found matching criteria."

// ErrNoFlamegraphData reports an input that produced zero parsed entries,
// either because the document has no titles or none of them parse.
var ErrNoFlamegraphData = errors.New("no flamegraph data found in the SVG file")

// Options control grouping and report shaping.
type Options struct {
	TopN       int
	MinPercent float64
	GroupBy    string // function, module or crate
	Demangle   bool
	SortBy     string // samples or percent
}

// selectRows applies the formatter's filter, sort and truncation steps and
// returns the surviving rows in output order.
func selectRows(groups map[string]GroupStat, topN int, minPercent float64, sortBy string) []groupRow {
	rows := make([]groupRow, 0, len(groups))
	for name, stat := range groups {
		if stat.MaxPercentage >= minPercent {
			rows = append(rows, groupRow{Name: name, Stat: stat})
		}
	}

	if sortBy == SortByPercent {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Stat.MaxPercentage > rows[j].Stat.MaxPercentage
		})
	} else {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Stat.TotalSamples > rows[j].Stat.TotalSamples
		})
	}

	if topN < 0 {
		topN = 0
	}
	if topN < len(rows) {
		rows = rows[:topN]
	}
	return rows
}

// FormatReport renders the aggregated groups as an aligned plain-text
// table: groups whose max percentage falls below minPercent are dropped,
// the rest sorted descending by the chosen field and truncated to topN.
// The sample column is right-aligned to the widest comma-grouped count.
func FormatReport(groups map[string]GroupStat, topN int, minPercent float64, sortBy string) string {
	rows := selectRows(groups, topN, minPercent, sortBy)
	if len(rows) == 0 {
		return NoEntriesMessage
	}

	var maxSamples int64
	for _, row := range rows {
		if row.Stat.TotalSamples > maxSamples {
			maxSamples = row.Stat.TotalSamples
		}
	}
	width := len(humanize.Comma(maxSamples))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%*s  %6s  Function/Path\n", width, "Samples", "%"))
	b.WriteString(strings.Repeat("-", width+2+6+2+50))
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("\n%*s  %5.2f%%  %s",
			width, humanize.Comma(row.Stat.TotalSamples), row.Stat.MaxPercentage, row.Name))
	}
	return b.String()
}

// AnalyzeFlamegraph runs the whole pipeline over an SVG document and
// renders the result in the requested output format. An input yielding
// zero parsed entries returns ErrNoFlamegraphData.
func AnalyzeFlamegraph(svg string, opts Options, format string) (string, error) {
	entries := ExtractEntries(svg)
	if len(entries) == 0 {
		return "", ErrNoFlamegraphData
	}
	return AnalyzeEntries(entries, opts, format)
}

// AnalyzeEntries groups already-parsed entries and renders the report.
// It backs both the SVG path and the pprof path.
func AnalyzeEntries(entries []Entry, opts Options, format string) (string, error) {
	total := TotalSamples(entries)
	groups := GroupEntries(entries, opts.GroupBy, opts.Demangle)

	switch format {
	case FormatText, FormatMarkdown:
		var b strings.Builder
		if format == FormatMarkdown {
			b.WriteString("```text\n")
		}
		b.WriteString(fmt.Sprintf("Parsed %d stack frames\n", len(entries)))
		b.WriteString(fmt.Sprintf("Total samples: %s\n\n", humanize.Comma(total)))
		b.WriteString(FormatReport(groups, opts.TopN, opts.MinPercent, opts.SortBy))
		if format == FormatMarkdown {
			b.WriteString("\n```")
		}
		return b.String(), nil

	case FormatJSON:
		rows := selectRows(groups, opts.TopN, opts.MinPercent, opts.SortBy)
		result := FlamegraphAnalysisResult{
			ParsedFrames:          len(entries),
			TotalSamples:          total,
			TotalSamplesFormatted: humanize.Comma(total),
			GroupBy:               opts.GroupBy,
			SortBy:                opts.SortBy,
			TopN:                  opts.TopN,
			Groups:                make([]GroupStatJSON, 0, len(rows)),
		}
		for _, row := range rows {
			result.Groups = append(result.Groups, GroupStatJSON{
				Name:                  row.Name,
				TotalSamples:          row.Stat.TotalSamples,
				TotalSamplesFormatted: humanize.Comma(row.Stat.TotalSamples),
				MaxPercentage:         row.Stat.MaxPercentage,
			})
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			errJSON, _ := json.Marshal(ErrorResult{Error: fmt.Sprintf("failed to marshal result to JSON: %v", err)})
			return string(errJSON), nil
		}
		return string(jsonBytes), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
