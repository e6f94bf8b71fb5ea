package analyzer

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// titlePattern recognizes literal <title>...</title> spans with no nested
// markup. Titles containing child elements are deliberately not matched;
// flamegraph generators emit plain text titles.
var titlePattern = regexp.MustCompile(`<title>([^<]+)</title>`)

// entryPattern matches "name (N samples, P%)". The count may carry comma
// thousand separators; "sample" may or may not be plural; the percentage
// must sit flush against the '%'. The non-greedy name capture together
// with the end anchor makes the last such clause split the title, so a
// name that itself contains "(... samples, ...%)" is kept intact.
var entryPattern = regexp.MustCompile(`^(.+?)\s+\(([0-9,]+)\s+samples?,\s+([0-9.]+)%\)$`)

// ExtractTitles scans an SVG document for title elements and returns their
// text content in document order, with HTML character references decoded.
// A document with no titles yields an empty slice.
func ExtractTitles(svg string) []string {
	matches := titlePattern.FindAllStringSubmatch(svg, -1)
	titles := make([]string, 0, len(matches))
	for _, m := range matches {
		titles = append(titles, html.UnescapeString(m[1]))
	}
	return titles
}

// ParseTitle parses one decoded title string into an Entry. The second
// return value is false when the title does not have the expected shape
// or a numeric field fails to convert; such titles are simply skipped.
func ParseTitle(title string) (Entry, bool) {
	m := entryPattern.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return Entry{}, false
	}

	samples, err := strconv.ParseInt(strings.ReplaceAll(m[2], ",", ""), 10, 64)
	if err != nil {
		return Entry{}, false
	}
	percentage, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Entry{}, false
	}

	return Entry{Name: m[1], Samples: samples, Percentage: percentage}, true
}

// ExtractEntries runs the extractor and parser over a whole SVG document.
// Titles that fail to parse contribute nothing.
func ExtractEntries(svg string) []Entry {
	var entries []Entry
	for _, title := range ExtractTitles(svg) {
		if entry, ok := ParseTitle(title); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}
